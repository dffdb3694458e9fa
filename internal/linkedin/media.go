package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/louisbranch/postforge/internal/platform/errors"
)

const (
	maxImageBytes    = 10 * 1024 * 1024
	maxDocumentBytes = 100 * 1024 * 1024
)

var imageMIMETypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

var documentMIMETypes = map[string]string{
	".pdf":  "application/pdf",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// UploadImage pushes an image through the multi-step upload flow and
// returns its URN once processing completes: initialize to get an upload
// URL, put the bytes, then poll until the asset is available.
func (c *Client) UploadImage(ctx context.Context, path string) (string, error) {
	data, mimeType, err := readMediaFile(path, imageMIMETypes, maxImageBytes)
	if err != nil {
		return "", err
	}
	return c.upload(ctx, "images", mimeType, data)
}

// UploadDocument pushes a document (PDF, slides, or Word) through the
// upload flow and returns its URN once processing completes.
func (c *Client) UploadDocument(ctx context.Context, path string) (string, error) {
	data, mimeType, err := readMediaFile(path, documentMIMETypes, maxDocumentBytes)
	if err != nil {
		return "", err
	}
	return c.upload(ctx, "documents", mimeType, data)
}

// MediaKindForPath reports whether a file publishes as an image or a
// document, based on its extension.
func MediaKindForPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := imageMIMETypes[ext]; ok {
		return "image", nil
	}
	if _, ok := documentMIMETypes[ext]; ok {
		return "document", nil
	}
	return "", apperrors.WithMetadata(apperrors.CodeLinkedInUploadFailed, "unsupported media type",
		map[string]string{"path": path})
}

func readMediaFile(path string, mimeTypes map[string]string, maxBytes int64) ([]byte, string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mimeType, ok := mimeTypes[ext]
	if !ok {
		return nil, "", apperrors.WithMetadata(apperrors.CodeLinkedInUploadFailed, "unsupported media type",
			map[string]string{"path": path})
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", apperrors.WrapWithMetadata(apperrors.CodeLinkedInUploadFailed, "media file not readable",
			map[string]string{"path": path}, err)
	}
	if info.Size() > maxBytes {
		return nil, "", apperrors.WithMetadata(apperrors.CodeLinkedInUploadFailed, "media file too large",
			map[string]string{"path": path, "size": fmt.Sprintf("%d", info.Size()), "max": fmt.Sprintf("%d", maxBytes)})
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", apperrors.WrapWithMetadata(apperrors.CodeLinkedInUploadFailed, "media file not readable",
			map[string]string{"path": path}, err)
	}
	return data, mimeType, nil
}

func (c *Client) upload(ctx context.Context, family, mimeType string, data []byte) (string, error) {
	if err := c.requireAuth(); err != nil {
		return "", err
	}
	uploadURL, urn, err := c.initializeUpload(ctx, family)
	if err != nil {
		return "", err
	}
	if err := c.uploadBytes(ctx, uploadURL, mimeType, data); err != nil {
		return "", err
	}
	if err := c.waitForAsset(ctx, family, urn); err != nil {
		return "", err
	}
	return urn, nil
}

func (c *Client) initializeUpload(ctx context.Context, family string) (uploadURL, urn string, err error) {
	author, err := c.author(ctx)
	if err != nil {
		return "", "", err
	}
	payload := map[string]map[string]string{
		"initializeUploadRequest": {"owner": author},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", "", err
	}

	endpoint := c.cfg.BaseURL + "/rest/" + family + "?action=initializeUpload"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", "", err
	}
	c.setRESTHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", apperrors.Wrap(apperrors.CodeLinkedInUploadFailed, "upload initialization failed", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", "", restError(apperrors.CodeLinkedInUploadFailed, "upload initialization rejected", resp)
	}

	var payload2 struct {
		Value struct {
			UploadURL string `json:"uploadUrl"`
			Image     string `json:"image"`
			Document  string `json:"document"`
		} `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload2); err != nil {
		return "", "", apperrors.Wrap(apperrors.CodeLinkedInResponseInvalid, "upload initialization response does not decode", err)
	}
	urn = payload2.Value.Image
	if urn == "" {
		urn = payload2.Value.Document
	}
	if payload2.Value.UploadURL == "" || urn == "" {
		return "", "", apperrors.New(apperrors.CodeLinkedInResponseInvalid, "upload initialization response is missing the upload url or urn")
	}
	return payload2.Value.UploadURL, urn, nil
}

func (c *Client) uploadBytes(ctx context.Context, uploadURL, mimeType string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	req.Header.Set("Content-Type", mimeType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeLinkedInUploadFailed, "media upload failed", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return restError(apperrors.CodeLinkedInUploadFailed, "media upload rejected", resp)
	}
	return nil
}

// waitForAsset polls the asset until LinkedIn reports it available.
// Processing failures and context deadlines cut the wait short.
func (c *Client) waitForAsset(ctx context.Context, family, urn string) error {
	for {
		status, err := c.assetStatus(ctx, family, urn)
		if err != nil {
			return err
		}
		switch status {
		case "AVAILABLE":
			return nil
		case "", "PROCESSING", "WAITING_UPLOAD":
		default:
			return apperrors.WithMetadata(apperrors.CodeLinkedInUploadFailed, "asset processing failed",
				map[string]string{"urn": urn, "status": status})
		}

		select {
		case <-ctx.Done():
			return apperrors.WrapWithMetadata(apperrors.CodeLinkedInMediaNotReady, "asset not ready before deadline",
				map[string]string{"urn": urn}, ctx.Err())
		case <-time.After(c.pollInterval):
		}
	}
}

func (c *Client) assetStatus(ctx context.Context, family, urn string) (string, error) {
	endpoint := c.cfg.BaseURL + "/rest/" + family + "/" + url.PathEscape(urn)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	c.setRESTHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeLinkedInUploadFailed, "asset status request failed", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", restError(apperrors.CodeLinkedInUploadFailed, "asset status rejected", resp)
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", apperrors.Wrap(apperrors.CodeLinkedInResponseInvalid, "asset status response does not decode", err)
	}
	return payload.Status, nil
}
