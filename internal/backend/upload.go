package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"estateFront/internal/models"
)

// progressReader reports the fraction of the multipart body consumed by the
// transport as it streams out.
type progressReader struct {
	r          io.Reader
	total      int64
	read       int64
	onProgress func(fraction float64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.total > 0 && p.onProgress != nil {
		p.read += int64(n)
		fraction := float64(p.read) / float64(p.total)
		if fraction > 1 {
			fraction = 1
		}
		p.onProgress(fraction)
	}
	return n, err
}

// UploadImages sends every image in one multipart request. There is no
// per-file concurrency; onProgress sees the byte fraction of the whole body.
func (c *Client) UploadImages(ctx context.Context, files []models.MediaFile, onProgress func(float64)) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	data, err := c.uploadMultipart(ctx, "/api/upload/images", "images", files, onProgress)
	if err != nil {
		return nil, err
	}
	return decodeUploadURLs(data)
}

func (c *Client) UploadVideo(ctx context.Context, file models.MediaFile, onProgress func(float64)) (string, error) {
	data, err := c.uploadMultipart(ctx, "/api/upload/video", "video", []models.MediaFile{file}, onProgress)
	if err != nil {
		return "", err
	}
	urls, err := decodeUploadURLs(data)
	if err != nil {
		return "", err
	}
	if len(urls) == 0 {
		return "", fmt.Errorf("upload response carried no url")
	}
	return urls[0], nil
}

func (c *Client) uploadMultipart(ctx context.Context, path, field string, files []models.MediaFile, onProgress func(float64)) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, file := range files {
		part, err := writer.CreateFormFile(field, file.Name)
		if err != nil {
			return nil, fmt.Errorf("build multipart: %w", err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, fmt.Errorf("build multipart: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}

	body := &progressReader{
		r:          bytes.NewReader(buf.Bytes()),
		total:      int64(buf.Len()),
		onProgress: onProgress,
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.ContentLength = int64(buf.Len())

	return c.send(req)
}

// decodeUploadURLs accepts either a list of plain url strings or a list of
// objects with a url/path field, wrapped in any of the known envelopes.
func decodeUploadURLs(data []byte) ([]string, error) {
	raw, ok := extractList(data)
	if !ok {
		// single-object response, e.g. {"url": "..."}
		var single struct {
			URL  string `json:"url"`
			Path string `json:"path"`
		}
		if err := json.Unmarshal(extractObject(data), &single); err == nil {
			if single.URL != "" {
				return []string{single.URL}, nil
			}
			if single.Path != "" {
				return []string{single.Path}, nil
			}
		}
		return nil, fmt.Errorf("unrecognized upload response shape")
	}

	var urls []string
	if err := json.Unmarshal(raw, &urls); err == nil {
		return urls, nil
	}

	var objects []struct {
		URL  string `json:"url"`
		Path string `json:"path"`
	}
	if err := json.Unmarshal(raw, &objects); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	for _, o := range objects {
		if o.URL != "" {
			urls = append(urls, o.URL)
		} else if o.Path != "" {
			urls = append(urls, o.Path)
		}
	}
	return urls, nil
}
