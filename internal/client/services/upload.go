package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/apiclient"
	"github.com/dmitrijs2005/wevraa-admin/internal/client/models"
)

const UploadImagePath = "/upload/image"

var ErrMissingUploadURL = errors.New("upload response missing url")

type UploadService struct {
	doer apiclient.Doer
}

func NewUploadService(d apiclient.Doer) *UploadService {
	return &UploadService{doer: d}
}

// Image uploads f and returns its public URL, to be used in product media.
func (s *UploadService) Image(ctx context.Context, f *File) (string, error) {
	if f == nil || len(f.Data) == 0 {
		return "", &ValidationError{Problems: []string{"file is required"}}
	}
	res, err := apiclient.Call[models.UploadResponse](ctx, s.doer, apiclient.Request{
		Method: http.MethodPost,
		Path:   UploadImagePath,
		Body:   form(nil, f.part("file")),
	})
	if err != nil {
		return "", err
	}
	if res.URL == "" {
		return "", ErrMissingUploadURL
	}
	return res.URL, nil
}
