package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kharthicsj/Axioa-sub005/pkg/domain"
)

// CreateProjectRequest is the payload for creating a new project. Budget
// type and payment terms are platform constants, never user input.
type CreateProjectRequest struct {
	ProjectName             string  `json:"projectName"`
	ServiceCategory         string  `json:"serviceCategory"`
	ProjectDescription      string  `json:"projectDescription"`
	Requirements            string  `json:"requirements"`
	QuotedPrice             float64 `json:"quotedPrice"`
	CompletionTime          int     `json:"completionTime"`
	Urgency                 string  `json:"urgency"`
	CommunicationPreference string  `json:"communicationPreference"`
	PhoneNumber             string  `json:"phoneNumber,omitempty"`
	EmailAddress            string  `json:"emailAddress,omitempty"`
	MeetingLink             string  `json:"meetingLink,omitempty"`
	AdditionalNotes         string  `json:"additionalNotes,omitempty"`
	AssignedTo              string  `json:"assignedTo,omitempty"`
	BudgetType              string  `json:"budgetType"`
	PaymentTerms            string  `json:"paymentTerms"`
}

// NewCreateProjectRequest assembles the API payload from a validated form.
// The request must have passed domain validation; unparseable numbers are
// sent as zero values rather than rejected here.
func NewCreateProjectRequest(r domain.ProjectRequest) CreateProjectRequest {
	price, _ := strconv.ParseFloat(strings.TrimSpace(r.QuotedPrice), 64) //nolint:errcheck // validated upstream
	days, _ := strconv.Atoi(strings.TrimSpace(r.CompletionTime))         //nolint:errcheck // validated upstream

	payload := CreateProjectRequest{
		ProjectName:             strings.TrimSpace(r.ProjectName),
		ServiceCategory:         r.ServiceCategory,
		ProjectDescription:      strings.TrimSpace(r.ProjectDescription),
		Requirements:            strings.TrimSpace(r.Requirements),
		QuotedPrice:             price,
		CompletionTime:          days,
		Urgency:                 string(r.Urgency),
		CommunicationPreference: string(r.CommunicationPreference),
		PhoneNumber:             strings.TrimSpace(r.PhoneNumber),
		EmailAddress:            strings.TrimSpace(r.EmailAddress),
		MeetingLink:             strings.TrimSpace(r.MeetingLink),
		AdditionalNotes:         strings.TrimSpace(r.AdditionalNotes),
		BudgetType:              domain.BudgetType,
		PaymentTerms:            domain.PaymentTerms,
	}
	if r.AssignedTo != uuid.Nil {
		payload.AssignedTo = r.AssignedTo.String()
	}
	return payload
}

// ProjectResult is the create-project response.
type ProjectResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Project *domain.Project `json:"project,omitempty"`
}

// ProjectQuery selects a page of the caller's projects. Page is 1-based.
type ProjectQuery struct {
	Status    domain.Status
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// ProjectPage is one page of the caller's projects plus server pagination.
type ProjectPage struct {
	Success    bool              `json:"success"`
	Projects   []domain.Project  `json:"projects"`
	Pagination domain.Pagination `json:"pagination"`
}

// ResolveObjectionRequest bundles the resolution message with the edited
// project fields.
type ResolveObjectionRequest struct {
	ResolutionMessage  string               `json:"resolutionMessage"`
	UpdatedProjectData CreateProjectRequest `json:"updatedProjectData"`
}

// StudentQuery selects a page of available students with server-side
// filters. Skills is the predefined list mapped from the service category.
type StudentQuery struct {
	Service string
	Skills  []string
	Page    int
	Limit   int
}

// StudentPage is one page of available students plus server pagination.
type StudentPage struct {
	Success bool `json:"success"`
	Data    struct {
		Students   []domain.Student         `json:"students"`
		Pagination domain.StudentPagination `json:"pagination"`
	} `json:"data"`
}

// Profile is the authenticated client's account summary.
type Profile struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Email    string    `json:"email,omitempty"`
}

// Client is the Axioa API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetProfile returns the authenticated client's profile.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.get(ctx, "/api/me", &p); err != nil {
		return nil, fmt.Errorf("client.GetProfile: %w", err)
	}
	return &p, nil
}

// CreateProject submits a new service request.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*ProjectResult, error) {
	var result ProjectResult
	if err := c.post(ctx, "/api/projects", req, &result); err != nil {
		return nil, fmt.Errorf("client.CreateProject: %w", err)
	}
	return &result, nil
}

// GetUserProjects fetches one page of the caller's projects with server-side
// status filtering and sorting.
func (c *Client) GetUserProjects(ctx context.Context, q ProjectQuery) (*ProjectPage, error) {
	params := url.Values{}
	if q.Status != "" {
		params.Set("status", string(q.Status))
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		params.Set("sortOrder", q.SortOrder)
	}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(q.Limit))

	var page ProjectPage
	if err := c.get(ctx, "/api/projects?"+params.Encode(), &page); err != nil {
		return nil, fmt.Errorf("client.GetUserProjects: %w", err)
	}
	return &page, nil
}

// ResolveObjection resubmits edited terms for a project whose assigned
// student raised an objection.
func (c *Client) ResolveObjection(ctx context.Context, projectID uuid.UUID, req ResolveObjectionRequest) error {
	path := "/api/projects/" + url.PathEscape(projectID.String()) + "/resolve-objection"
	if err := c.post(ctx, path, req, nil); err != nil {
		return fmt.Errorf("client.ResolveObjection: %w", err)
	}
	return nil
}

// ListAvailableStudents fetches one page of students matching the
// server-side filters.
func (c *Client) ListAvailableStudents(ctx context.Context, q StudentQuery) (*StudentPage, error) {
	params := url.Values{}
	if q.Service != "" {
		params.Set("service", q.Service)
	}
	if len(q.Skills) > 0 {
		params.Set("skills", strings.Join(q.Skills, ","))
	}
	params.Set("page", strconv.Itoa(q.Page))
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	var page StudentPage
	if err := c.get(ctx, "/api/students/available?"+params.Encode(), &page); err != nil {
		return nil, fmt.Errorf("client.ListAvailableStudents: %w", err)
	}
	return &page, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil {
			if apiErr.Error != "" {
				return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
			}
			if apiErr.Message != "" {
				return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Message}
			}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
