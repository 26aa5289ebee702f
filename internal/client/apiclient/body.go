package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"sort"
)

const (
	contentTypeJSON   = "application/json"
	contentTypeBinary = "application/octet-stream"
)

// Form is a multipart/form-data body.
type Form struct {
	Fields map[string]string
	Files  []FormFile
}

type FormFile struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// Binary is a raw, non-JSON body sent with its own content type.
type Binary struct {
	Data        []byte
	ContentType string
}

// encodedBody is a request body materialized once so a retry can resend it.
type encodedBody struct {
	data        []byte
	contentType string
	json        bool
}

func encodeBody(body any) (encodedBody, error) {
	switch b := body.(type) {
	case nil:
		return encodedBody{contentType: contentTypeJSON, json: true}, nil
	case *Form:
		return encodeForm(b)
	case Form:
		return encodeForm(&b)
	case *Binary:
		return encodeBinary(b), nil
	case Binary:
		return encodeBinary(&b), nil
	case json.RawMessage:
		return encodedBody{data: b, contentType: contentTypeJSON, json: true}, nil
	case []byte:
		return encodedBody{data: b, contentType: contentTypeJSON, json: true}, nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return encodedBody{}, fmt.Errorf("encode request body: %w", err)
		}
		return encodedBody{data: data, contentType: contentTypeJSON, json: true}, nil
	}
}

func encodeBinary(b *Binary) encodedBody {
	ct := b.ContentType
	if ct == "" {
		ct = contentTypeBinary
	}
	return encodedBody{data: b.Data, contentType: ct}
}

func encodeForm(f *Form) (encodedBody, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(f.Fields))
	for k := range f.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, f.Fields[k]); err != nil {
			return encodedBody{}, fmt.Errorf("write form field %s: %w", k, err)
		}
	}

	for _, file := range f.Files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Filename))
		ct := file.ContentType
		if ct == "" {
			ct = contentTypeBinary
		}
		h.Set("Content-Type", ct)

		part, err := w.CreatePart(h)
		if err != nil {
			return encodedBody{}, fmt.Errorf("create form file %s: %w", file.Field, err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return encodedBody{}, fmt.Errorf("write form file %s: %w", file.Field, err)
		}
	}

	if err := w.Close(); err != nil {
		return encodedBody{}, fmt.Errorf("close multipart body: %w", err)
	}
	return encodedBody{data: buf.Bytes(), contentType: w.FormDataContentType()}, nil
}
