package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/selamsoft/selam-web/internal/types"
)

// Submission is one job application on its way to the backend.
type Submission struct {
	JobID       string
	Form        types.ApplicationForm
	Resume      *types.Attachment
	CoverLetter *types.Attachment // optional
}

// Receipt describes an accepted submission.
type Receipt struct {
	StatusCode int
	ID         string // application id when the backend returns one
}

// SubmitApplication posts the application to /api/v1/applications as a
// multipart form. Any non-2xx status is a failure whatever the body says.
func (c *Client) SubmitApplication(ctx context.Context, sub Submission) (*Receipt, error) {
	const op = "submit application"
	const message = "Failed to submit application"
	target := c.endpoint("applications")

	body, contentType, err := EncodeSubmission(sub)
	if err != nil {
		return nil, logged(transportError(op, target, message, err))
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, logged(transportError(op, target, message, err))
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", contentType)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[api] POST %s failed after %v: %v", target, time.Since(start), err)
		return nil, transportError(op, target, message, err)
	}
	defer func() { _ = resp.Body.Close() }()
	log.Printf("[api] POST %s -> %d in %v (job %s)", target, resp.StatusCode, time.Since(start), sub.JobID)

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if !isSuccess(resp.StatusCode) {
		return nil, statusError(op, target, message, resp.StatusCode)
	}

	receipt := &Receipt{StatusCode: resp.StatusCode}
	var ack struct {
		ID json.RawMessage `json:"id"`
	}
	if json.Unmarshal(respBody, &ack) == nil && len(ack.ID) > 0 {
		var id types.FlexString
		if json.Unmarshal(ack.ID, &id) == nil {
			receipt.ID = id.String()
		}
	}
	return receipt, nil
}

// EncodeSubmission builds the multipart body: jobId, the text fields in
// canonical order, then resume and coverLetter when present.
func EncodeSubmission(sub Submission) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("jobId", sub.JobID); err != nil {
		return nil, "", err
	}
	values := sub.Form.Values()
	for _, name := range types.ApplicationFieldNames {
		if err := w.WriteField(name, values[name]); err != nil {
			return nil, "", err
		}
	}

	for _, att := range []*types.Attachment{sub.Resume, sub.CoverLetter} {
		if att == nil {
			continue
		}
		if err := writeFile(w, att); err != nil {
			return nil, "", fmt.Errorf("failed to encode %s: %w", att.Field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFile(w *multipart.Writer, att *types.Attachment) error {
	contentType := att.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(att.Field), quoteEscaper.Replace(att.Filename)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(att.Data)
	return err
}
