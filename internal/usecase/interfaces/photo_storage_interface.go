package interfaces

import "context"

// Photo is an uploaded survey attachment.
type Photo struct {
	Filename    string
	ContentType string
	Data        []byte
}

// IPhotoStorage stores survey photos and returns the object path recorded on the lead.
type IPhotoStorage interface {
	Save(ctx context.Context, builderID, leadID string, photo Photo) (string, error)
}
