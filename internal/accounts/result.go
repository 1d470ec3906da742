package accounts

// Messages shown to the member after each operation.
const (
	MsgRegistered         = "Registration successful!"
	MsgDuplicateEmail     = "Email is already in use!"
	MsgLoggedIn           = "Login successful!"
	MsgInvalidCredentials = "Invalid email or password!"
	MsgLoggedOut          = "Logged out successfully!"
	MsgProfileUpdated     = "Profile updated successfully!"
	MsgUserNotFound       = "User not found!"
	MsgUserDeleted        = "User deleted successfully!"
	MsgDataCleared        = "All data cleared!"
	MsgStorageError       = "Storage error, please try again!"
)

// Result is what every account operation returns. Failures are ordinary
// values: Success is false, Message is ready to show and Err can be matched
// with errors.Is against the sentinels in package common.
type Result struct {
	Success bool
	Message string
	User    *User
	Err     error
}

func ok(msg string, u *User) Result {
	return Result{Success: true, Message: msg, User: u}
}

func fail(msg string, err error) Result {
	return Result{Message: msg, Err: err}
}
