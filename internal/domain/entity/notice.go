package entity

// NoticeLevel is the severity of a user-visible notification.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice codes sent on the notification side channel.
const (
	NoticeQueryFailed = "QUERY_FAILED"
	NoticeNoResults   = "NO_RESULTS"
	NoticeLinkCopied  = "LINK_COPIED"
)

// Notice is a transient toast-style message for the view.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
}
