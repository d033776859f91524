package rabbitmq

const (
	PROFILE_CREATED_QUEUE = "profiles.created"
	PROFILE_UPDATED_QUEUE = "profiles.updated"
)
