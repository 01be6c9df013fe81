package fulfilment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
)

// HTTPFulfilmentClient implements ports.FulfilmentClient against the REST
// API of the external fulfilment system. One job is created per order leg;
// the client-chosen job id doubles as the idempotency key, so a retried
// create with the same key cannot book a second job.
//
// The client is safe for concurrent use.
type HTTPFulfilmentClient struct {
	session *http.Client
	apiKey  string
	baseURL string
}

// NewHTTPFulfilmentClient creates a fulfilment client for the given API
// endpoint. The API key is sent as the X-API-KEY header on every request.
func NewHTTPFulfilmentClient(baseURL string, apiKey string) (*HTTPFulfilmentClient, error) {
	if baseURL == "" {
		return nil, errors.New("fulfilment api base url is empty")
	}
	if apiKey == "" {
		return nil, errors.New("fulfilment api key is empty")
	}

	return &HTTPFulfilmentClient{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: baseURL,
	}, nil
}

type jobRequest struct {
	ID             string   `json:"id"`
	Type           string   `json:"type"`
	Location       string   `json:"location"`
	ContactName    string   `json:"contact_name"`
	ContactPhone   string   `json:"contact_phone,omitempty"`
	ContactEmail   string   `json:"contact_email,omitempty"`
	Timeslot       string   `json:"timeslot,omitempty"`
	Reference      string   `json:"reference"`
	RelatedJobID   string   `json:"related_job_id,omitempty"`
	PreferredDates []string `json:"preferred_date"`
}

type jobResponse struct {
	ID string `json:"id"`
}

// CreateJob creates the external job for one leg of an order and returns the
// job reference the fulfilment system assigned. Transient failures are
// retried with backoff; the deterministic job id keeps the retries safe.
func (c *HTTPFulfilmentClient) CreateJob(
	ctx context.Context,
	key string,
	aggregate *order.Order,
	leg order.Leg,
) (string, error) {
	payload, err := json.Marshal(buildJobRequest(key, aggregate, leg))
	if err != nil {
		return "", fmt.Errorf("marshal job request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPost, c.baseURL+"/api/jobs", bytes.NewReader(payload))
	})
	if err != nil {
		return "", fmt.Errorf("create fulfilment job %s: %w", key, err)
	}
	defer resp.Body.Close()

	var job jobResponse
	if err = json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return "", fmt.Errorf("decode fulfilment job %s: %w", key, err)
	}
	if job.ID == "" {
		return "", fmt.Errorf("fulfilment job %s: response carries no job id", key)
	}

	return job.ID, nil
}

// LookupJob reads a job back by its idempotency key. A miss is reported as
// found=false, not as an error: the caller uses the lookup to decide whether
// an earlier attempt already created the job.
func (c *HTTPFulfilmentClient) LookupJob(ctx context.Context, key string) (string, bool, error) {
	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, c.baseURL+"/api/jobs/"+key, nil)
	})
	if err != nil {
		var statusErr *httpStatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return "", false, nil
		}
		return "", false, fmt.Errorf("lookup fulfilment job %s: %w", key, err)
	}
	defer resp.Body.Close()

	var job jobResponse
	if err = json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return "", false, fmt.Errorf("decode fulfilment job %s: %w", key, err)
	}
	if job.ID == "" {
		return "", false, nil
	}

	return job.ID, true, nil
}

// buildJobRequest maps one leg of an order to the fulfilment wire format.
// Pickup legs visit the sender, delivery legs visit the receiver and carry
// the pickup job as their related job so the planner keeps the legs ordered.
func buildJobRequest(key string, aggregate *order.Order, leg order.Leg) jobRequest {
	party := aggregate.Sender()
	jobType := "collection"
	timeslot := aggregate.PickupTimeslot()
	dates := aggregate.SenderCandidateDates()
	relatedJob := ""

	if leg == order.DeliveryLeg {
		party = aggregate.Receiver()
		jobType = "delivery"
		timeslot = aggregate.DeliveryTimeslot()
		dates = aggregate.ReceiverCandidateDates()
		relatedJob = aggregate.PickupJobRef()
	}

	return jobRequest{
		ID:             key,
		Type:           jobType,
		Location:       party.Address().String(),
		ContactName:    party.Name(),
		ContactPhone:   party.Phone(),
		ContactEmail:   party.Email(),
		Timeslot:       timeslot,
		Reference:      aggregate.ID().String(),
		RelatedJobID:   relatedJob,
		PreferredDates: formatDays(dates),
	}
}

func formatDays(days []kernel.Day) []string {
	formatted := make([]string, 0, len(days))
	for _, day := range days {
		formatted = append(formatted, day.String())
	}
	return formatted
}
