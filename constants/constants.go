package constants

// エラーメッセージ
const (
	ErrProductNotFound  = "Product not found"
	ErrCartItemNotFound = "Cart item not found"
	ErrEmailTaken       = "Email already registered"
	ErrBadCredentials   = "Incorrect email or password"
	ErrCartEmpty        = "Cart is empty"
	ErrUnexpected       = "Unexpected error"
	ErrInvalidID        = "Invalid id"
	ErrInvalidInput     = "Invalid input"
)
