package session

//go:generate mockgen -destination=notifier_mock_test.go -package=session . Notifier

// MsgAccessDenied is shown for every failed directory listing during navigation.
const MsgAccessDenied = "Access Denied"

// Notifier shows a blocking message to the user.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) {
	f(message)
}
