// Package upload is the media gateway: it forwards images to the hosted
// media service and hands back public URLs. Nothing is persisted locally.
package upload

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader abstracts the media host so handlers can be tested without the
// network.
type Uploader interface {
	// UploadFromReader streams raw image bytes to the media host and
	// returns the public URL.
	UploadFromReader(ctx context.Context, r io.Reader) (string, error)
	// UploadFromURL has the media host fetch and ingest a remote image
	// itself, returning the public URL.
	UploadFromURL(ctx context.Context, remoteURL string) (string, error)
}

// CloudinaryUploader uploads into a fixed folder on Cloudinary.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinary builds an uploader from a cloudinary:// URL.
func NewCloudinary(cloudinaryURL, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

func (u *CloudinaryUploader) UploadFromReader(ctx context.Context, r io.Reader) (string, error) {
	return u.upload(ctx, r)
}

func (u *CloudinaryUploader) UploadFromURL(ctx context.Context, remoteURL string) (string, error) {
	// Passing a URL makes Cloudinary fetch the image server-side.
	return u.upload(ctx, remoteURL)
}

func (u *CloudinaryUploader) upload(ctx context.Context, file interface{}) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: u.folder})
	if err != nil {
		return "", err
	}
	// The SDK reports API-level failures in the result rather than err.
	if res.Error.Message != "" {
		return "", errors.New(res.Error.Message)
	}
	return res.SecureURL, nil
}
