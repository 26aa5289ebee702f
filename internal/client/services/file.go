package services

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/apiclient"
)

// File is an in-memory file to upload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// ReadFile loads path and guesses its content type from the extension,
// falling back to content sniffing.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	return &File{Name: filepath.Base(path), ContentType: ct, Data: data}, nil
}

func (f *File) part(field string) apiclient.FormFile {
	return apiclient.FormFile{Field: field, Filename: f.Name, ContentType: f.ContentType, Data: f.Data}
}

// form builds a multipart body, skipping empty fields.
func form(fields map[string]string, files ...apiclient.FormFile) *apiclient.Form {
	f := &apiclient.Form{Fields: make(map[string]string, len(fields)), Files: files}
	for k, v := range fields {
		if v != "" {
			f.Fields[k] = v
		}
	}
	return f
}
