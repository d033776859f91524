package dto

type SignUpDto struct {
	Username        string `json:"username" binding:"required,min=3,max=30"`
	Password        string `json:"password" binding:"required,min=8,max=48"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type SignInDto struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Password string `json:"password" binding:"required"`
}
