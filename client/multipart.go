package client

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/Corpus-2021/htmlunit/browser"
)

// octetStream is sent for files whose extension the browser version does
// not register.
const octetStream = "application/octet-stream"

type formField struct {
	name  string
	value string
}

type formFile struct {
	field    string
	filename string
	data     []byte
}

// FormData collects multipart form fields and file attachments. File MIME
// types are resolved through the browser version's upload table when the
// form is encoded.
type FormData struct {
	fields []formField
	files  []formFile
}

// NewFormData creates an empty form.
func NewFormData() *FormData {
	return &FormData{}
}

// AddField appends a plain text field.
func (f *FormData) AddField(name, value string) *FormData {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// AddFile appends a file attachment under the given field name.
func (f *FormData) AddFile(field, filename string, data []byte) *FormData {
	f.files = append(f.files, formFile{field: field, filename: filename, data: data})
	return f
}

// Encode serializes the form as multipart/form-data, tagging each file
// with the content type the given browser version would report for it.
func (f *FormData) Encode(version *browser.BrowserVersion) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("write field %q: %w", field.name, err)
		}
	}

	for _, file := range f.files {
		contentType := version.UploadMimeType(file.filename)
		if contentType == "" {
			contentType = octetStream
		}
		header := filePartHeader(file.field, file.filename, contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("create part %q: %w", file.filename, err)
		}
		if _, err := part.Write(file.data); err != nil {
			return nil, "", fmt.Errorf("write part %q: %w", file.filename, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return buf.Bytes(), writer.FormDataContentType(), nil
}

var partEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func filePartHeader(field, filename, contentType string) textproto.MIMEHeader {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			partEscaper.Replace(field), partEscaper.Replace(filename)))
	header.Set("Content-Type", contentType)
	return header
}
