package user

// Uploader is the explicit identity context threaded through the upload
// pipeline and its collaborators. It is always passed as an argument,
// never read from ambient/global state, so delayed re-dispatches can carry
// the acting user across process boundaries.
type Uploader struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	IPAddr string `json:"ip_addr"`

	// CanUploadFree marks uploaders whose posts skip the moderation
	// queue unless they explicitly request pending status.
	CanUploadFree bool `json:"can_upload_free"`
}
