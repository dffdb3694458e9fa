package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"unicode/utf8"

	apperrors "github.com/louisbranch/postforge/internal/platform/errors"
)

// Media identifies an uploaded asset to attach to a post.
type Media struct {
	URN     string
	Title   string
	AltText string
}

// Poll describes a poll attachment. Durations follow the API's closed set;
// a blank duration defaults to three days.
type Poll struct {
	Question string
	Options  []string
	Duration string
}

const (
	maxPollQuestionLength = 140
	maxPollOptionLength   = 30
	maxMultiImageCount    = 20
)

var pollDurations = map[string]bool{
	"ONE_DAY":    true,
	"THREE_DAYS": true,
	"ONE_WEEK":   true,
	"TWO_WEEKS":  true,
}

type postPayload struct {
	Author         string       `json:"author"`
	Commentary     string       `json:"commentary"`
	Visibility     Visibility   `json:"visibility"`
	Content        *postContent `json:"content,omitempty"`
	LifecycleState string       `json:"lifecycleState"`
	Distribution   distribution `json:"distribution"`
}

type distribution struct {
	FeedDistribution string `json:"feedDistribution"`
}

type postContent struct {
	Media      *mediaContent      `json:"media,omitempty"`
	MultiImage *multiImageContent `json:"multiImage,omitempty"`
	Poll       *pollContent       `json:"poll,omitempty"`
}

type mediaContent struct {
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"`
	AltText string `json:"altText,omitempty"`
}

type multiImageContent struct {
	Images []mediaContent `json:"images"`
}

type pollContent struct {
	Question string       `json:"question"`
	Options  []pollOption `json:"options"`
	Settings pollSettings `json:"settings"`
}

type pollOption struct {
	Text string `json:"text"`
}

type pollSettings struct {
	Duration string `json:"duration"`
}

// CreatePost publishes a text post and returns its URN.
func (c *Client) CreatePost(ctx context.Context, text string, visibility Visibility) (string, error) {
	return c.createPost(ctx, text, visibility, nil)
}

// CreateMediaPost publishes a post with uploaded assets attached. One
// asset becomes a media post; several become a multi-image post.
func (c *Client) CreateMediaPost(ctx context.Context, text string, visibility Visibility, media ...Media) (string, error) {
	switch len(media) {
	case 0:
		return c.createPost(ctx, text, visibility, nil)
	case 1:
		return c.createPost(ctx, text, visibility, &postContent{
			Media: &mediaContent{ID: media[0].URN, Title: media[0].Title, AltText: media[0].AltText},
		})
	}

	if len(media) > maxMultiImageCount {
		return "", apperrors.WithMetadata(apperrors.CodeLinkedInPostRejected,
			"too many images for a multi-image post",
			map[string]string{"count": strconv.Itoa(len(media)), "max": strconv.Itoa(maxMultiImageCount)})
	}
	images := make([]mediaContent, 0, len(media))
	for _, m := range media {
		images = append(images, mediaContent{ID: m.URN, AltText: m.AltText})
	}
	return c.createPost(ctx, text, visibility, &postContent{MultiImage: &multiImageContent{Images: images}})
}

// CreatePollPost publishes a post carrying a native poll.
func (c *Client) CreatePollPost(ctx context.Context, text string, visibility Visibility, poll Poll) (string, error) {
	if n := utf8.RuneCountInString(poll.Question); n == 0 || n > maxPollQuestionLength {
		return "", apperrors.WithMetadata(apperrors.CodeLinkedInPostRejected, "poll question length out of range",
			map[string]string{"length": strconv.Itoa(n), "max": strconv.Itoa(maxPollQuestionLength)})
	}
	if len(poll.Options) < 2 || len(poll.Options) > 4 {
		return "", apperrors.WithMetadata(apperrors.CodeLinkedInPostRejected, "polls take 2 to 4 options",
			map[string]string{"count": strconv.Itoa(len(poll.Options))})
	}
	options := make([]pollOption, 0, len(poll.Options))
	for _, option := range poll.Options {
		if n := utf8.RuneCountInString(option); n == 0 || n > maxPollOptionLength {
			return "", apperrors.WithMetadata(apperrors.CodeLinkedInPostRejected, "poll option length out of range",
				map[string]string{"option": option, "max": strconv.Itoa(maxPollOptionLength)})
		}
		options = append(options, pollOption{Text: option})
	}
	duration := poll.Duration
	if duration == "" {
		duration = "THREE_DAYS"
	}
	if !pollDurations[duration] {
		return "", apperrors.WithMetadata(apperrors.CodeLinkedInPostRejected, "unknown poll duration",
			map[string]string{"duration": duration})
	}

	return c.createPost(ctx, text, visibility, &postContent{
		Poll: &pollContent{Question: poll.Question, Options: options, Settings: pollSettings{Duration: duration}},
	})
}

func (c *Client) createPost(ctx context.Context, text string, visibility Visibility, content *postContent) (string, error) {
	if err := c.requireAuth(); err != nil {
		return "", err
	}
	author, err := c.author(ctx)
	if err != nil {
		return "", err
	}

	payload := postPayload{
		Author:         author,
		Commentary:     text,
		Visibility:     visibility,
		Content:        content,
		LifecycleState: "PUBLISHED",
		Distribution:   distribution{FeedDistribution: "MAIN_FEED"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/rest/posts", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	c.setRESTHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeLinkedInPostRejected, "post request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", restError(apperrors.CodeLinkedInPostRejected, "post rejected", resp)
	}
	postID := resp.Header.Get("x-restli-id")
	if postID == "" {
		return "", apperrors.New(apperrors.CodeLinkedInResponseInvalid, "response is missing the post id header")
	}
	return postID, nil
}
