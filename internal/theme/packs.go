package theme

// Colors for one mode of a theme pack.
type Colors struct {
	Background     string    `json:"background"`
	CardBackground string    `json:"cardBackground"`
	Gradient       *Gradient `json:"gradient,omitempty"`
	FontFamily     string    `json:"fontFamily,omitempty"`
	Border         string    `json:"border,omitempty"`
	Accent         string    `json:"accent,omitempty"`
}

type Gradient struct {
	From string `json:"from"`
	Via  string `json:"via,omitempty"`
	To   string `json:"to"`
}

// Pack is a static catalog entry referenced by id from a profile document.
type Pack struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Light       Colors `json:"light"`
	Dark        Colors `json:"dark"`
	Thumbnail   string `json:"thumbnail"`
}

const DefaultPackID = "default"

var packs = []Pack{
	{
		ID:          DefaultPackID,
		Name:        "Default",
		Description: "Clean and simple",
		Light:       Colors{Background: "#ffffff", CardBackground: "#f8f9fa"},
		Dark:        Colors{Background: "#0a0a0b", CardBackground: "#18181b"},
		Thumbnail:   "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
	},
	{
		ID:          "ocean",
		Name:        "Ocean Breeze",
		Description: "Cool and calming blues",
		Light: Colors{
			Background:     "#e0f7ff",
			CardBackground: "#ffffff",
			Gradient:       &Gradient{From: "#06b6d4", To: "#3b82f6"},
			Border:         "#06b6d4",
			Accent:         "#0ea5e9",
		},
		Dark: Colors{
			Background:     "#0c1e2e",
			CardBackground: "#1a2f42",
			Gradient:       &Gradient{From: "#06b6d4", To: "#3b82f6"},
			Border:         "#06b6d4",
			Accent:         "#0ea5e9",
		},
		Thumbnail: "linear-gradient(135deg, #06b6d4 0%, #3b82f6 100%)",
	},
	{
		ID:          "sunset",
		Name:        "Sunset Glow",
		Description: "Warm sunset vibes",
		Light: Colors{
			Background:     "#fff5f0",
			CardBackground: "#ffffff",
			Gradient:       &Gradient{From: "#f97316", Via: "#f59e0b", To: "#ef4444"},
			Border:         "#f97316",
			Accent:         "#fb923c",
		},
		Dark: Colors{
			Background:     "#1a0f0a",
			CardBackground: "#2d1810",
			Gradient:       &Gradient{From: "#f97316", Via: "#f59e0b", To: "#ef4444"},
			Border:         "#f97316",
			Accent:         "#fb923c",
		},
		Thumbnail: "linear-gradient(135deg, #f97316 0%, #f59e0b 50%, #ef4444 100%)",
	},
	{
		ID:          "forest",
		Name:        "Forest Green",
		Description: "Natural and earthy",
		Light: Colors{
			Background:     "#f0fdf4",
			CardBackground: "#ffffff",
			Gradient:       &Gradient{From: "#10b981", To: "#059669"},
			Border:         "#10b981",
			Accent:         "#34d399",
		},
		Dark: Colors{
			Background:     "#0a1f14",
			CardBackground: "#163020",
			Gradient:       &Gradient{From: "#10b981", To: "#059669"},
			Border:         "#10b981",
			Accent:         "#34d399",
		},
		Thumbnail: "linear-gradient(135deg, #10b981 0%, #059669 100%)",
	},
	{
		ID:          "lavender",
		Name:        "Lavender Dream",
		Description: "Soft and elegant purple",
		Light: Colors{
			Background:     "#faf5ff",
			CardBackground: "#ffffff",
			Gradient:       &Gradient{From: "#a855f7", To: "#ec4899"},
			Border:         "#a855f7",
			Accent:         "#c084fc",
		},
		Dark: Colors{
			Background:     "#1a0f1f",
			CardBackground: "#2d1b33",
			Gradient:       &Gradient{From: "#a855f7", To: "#ec4899"},
			Border:         "#a855f7",
			Accent:         "#c084fc",
		},
		Thumbnail: "linear-gradient(135deg, #a855f7 0%, #ec4899 100%)",
	},
	{
		ID:          "midnight",
		Name:        "Midnight Blue",
		Description: "Deep and mysterious",
		Light: Colors{
			Background:     "#eff6ff",
			CardBackground: "#ffffff",
			Gradient:       &Gradient{From: "#1e40af", To: "#7c3aed"},
			Border:         "#1e40af",
			Accent:         "#3b82f6",
		},
		Dark: Colors{
			Background:     "#0f172a",
			CardBackground: "#1e293b",
			Gradient:       &Gradient{From: "#1e40af", To: "#7c3aed"},
			Border:         "#1e40af",
			Accent:         "#3b82f6",
		},
		Thumbnail: "linear-gradient(135deg, #1e40af 0%, #7c3aed 100%)",
	},
	{
		ID:          "candy",
		Name:        "Candy Pop",
		Description: "Sweet and vibrant",
		Light: Colors{
			Background:     "#fff1f8",
			CardBackground: "#ffffff",
			Gradient:       &Gradient{From: "#ec4899", Via: "#f472b6", To: "#fb7185"},
			Border:         "#ec4899",
			Accent:         "#f472b6",
		},
		Dark: Colors{
			Background:     "#1f0a14",
			CardBackground: "#331525",
			Gradient:       &Gradient{From: "#ec4899", Via: "#f472b6", To: "#fb7185"},
			Border:         "#ec4899",
			Accent:         "#f472b6",
		},
		Thumbnail: "linear-gradient(135deg, #ec4899 0%, #f472b6 50%, #fb7185 100%)",
	},
	{
		ID:          "monochrome",
		Name:        "Monochrome",
		Description: "Classic black and white",
		Light: Colors{
			Background:     "#ffffff",
			CardBackground: "#f5f5f5",
			Gradient:       &Gradient{From: "#000000", To: "#374151"},
			Border:         "#000000",
			Accent:         "#1f2937",
		},
		Dark: Colors{
			Background:     "#000000",
			CardBackground: "#0f0f0f",
			Gradient:       &Gradient{From: "#ffffff", To: "#9ca3af"},
			Border:         "#ffffff",
			Accent:         "#d1d5db",
		},
		Thumbnail: "linear-gradient(135deg, #000000 0%, #374151 100%)",
	},
}

var packIndex = func() map[string]int {
	index := make(map[string]int, len(packs))
	for i, pack := range packs {
		index[pack.ID] = i
	}
	return index
}()

func Packs() []Pack {
	out := make([]Pack, len(packs))
	copy(out, packs)
	return out
}

func Find(id string) (Pack, bool) {
	i, ok := packIndex[id]
	if !ok {
		return Pack{}, false
	}
	return packs[i], true
}

func Exists(id string) bool {
	_, ok := packIndex[id]
	return ok
}

func Default() Pack {
	return packs[0]
}
