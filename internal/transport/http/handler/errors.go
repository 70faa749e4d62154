package handler

const (
	errInternalServer       = "Internal server error"
	errIncorrectCredentials = "Incorrect username or password"
	errNotEnoughPermission  = "Not enough permission"
	errUserNotFound         = "User not found"
	errTodoNotFound         = "Task not found"
	errUsernameExists       = "User with this username already exists"
	errEmailExists          = "User with this email already exists"
)
