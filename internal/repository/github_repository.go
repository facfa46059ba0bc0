package repository

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"changemoney-backend/internal/domain"
)

// GitHubOrderRepository keeps the order sequence as one JSON file in a
// repository, driven through the contents API: read the file (content plus
// blob sha), modify the decoded array, write it back with the sha and a
// commit message. The store is an opaque remote blob; nothing beyond the
// sha GitHub itself requires guards concurrent writers.
type GitHubOrderRepository struct {
	Token    string
	Repo     string // "owner/name"
	FilePath string
	BaseURL  string // e.g. https://api.github.com
	Client   *http.Client
}

func NewGitHubOrderRepository(token, repo, filePath, baseURL string) *GitHubOrderRepository {
	return &GitHubOrderRepository{
		Token:    token,
		Repo:     repo,
		FilePath: filePath,
		BaseURL:  strings.TrimSuffix(baseURL, "/"),
		Client:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (r *GitHubOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	orders, _, err := r.load(ctx)
	return orders, err
}

func (r *GitHubOrderRepository) Append(ctx context.Context, order domain.Order) error {
	orders, sha, err := r.load(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, order)
	return r.save(ctx, orders, sha, "Add new order: "+order.ID)
}

func (r *GitHubOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, updatedAt string) (*domain.Order, error) {
	orders, sha, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			orders[i].UpdatedAt = updatedAt
			if err := r.save(ctx, orders, sha, "Update order status: "+id); err != nil {
				return nil, err
			}
			updated := orders[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (r *GitHubOrderRepository) Clear(ctx context.Context) error {
	_, sha, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, []domain.Order{}, sha, "Clear all orders")
}

// Health probes the contents endpoint. A missing file is healthy: it
// bootstraps to an empty sequence on first write.
func (r *GitHubOrderRepository) Health(ctx context.Context) error {
	_, _, err := r.load(ctx)
	return err
}

func (r *GitHubOrderRepository) contentsURL() string {
	return fmt.Sprintf("%s/repos/%s/contents/%s", r.BaseURL, r.Repo, r.FilePath)
}

// load fetches the current array and its blob sha. A 404 yields an empty
// sequence and no sha.
func (r *GitHubOrderRepository) load(ctx context.Context) ([]domain.Order, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.contentsURL(), nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Authorization", "token "+r.Token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch orders blob: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []domain.Order{}, "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch orders blob: unexpected status %d", resp.StatusCode)
	}

	var file struct {
		Content string `json:"content"`
		SHA     string `json:"sha"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return nil, "", fmt.Errorf("decode contents response: %w", err)
	}

	// The API wraps base64 content in newlines.
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(file.Content, "\n", ""))
	if err != nil {
		return nil, "", fmt.Errorf("decode orders blob: %w", err)
	}

	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, "", fmt.Errorf("parse orders blob: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, file.SHA, nil
}

func (r *GitHubOrderRepository) save(ctx context.Context, orders []domain.Order, sha, message string) error {
	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}

	payload := map[string]string{
		"message": message,
		"content": base64.StdEncoding.EncodeToString(data),
	}
	if sha != "" {
		payload["sha"] = sha
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, r.contentsURL(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "token "+r.Token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("update orders blob: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("update orders blob: unexpected status %d", resp.StatusCode)
	}
	return nil
}
