package entity

// DriveFile is the subset of a hosted file the resolver needs.
type DriveFile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WebViewLink string `json:"webViewLink"`
}
