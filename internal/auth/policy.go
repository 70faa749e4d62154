package auth

import "github.com/tiago154/fast-zero/internal/domain"

// CanModifyUser reports whether principal may mutate the user record with
// targetID. There are no roles or admin overrides: only the owner may.
func CanModifyUser(principal *domain.User, targetID int64) bool {
	return principal != nil && principal.ID == targetID
}

// CanAccessTodo reports whether principal owns todo.
func CanAccessTodo(principal *domain.User, todo *domain.Todo) bool {
	return principal != nil && todo != nil && todo.UserID == principal.ID
}
