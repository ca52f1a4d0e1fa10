package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"rupeeshop-client/internal/logger"
	"rupeeshop-client/internal/metrics"
	"rupeeshop-client/internal/order"
	"rupeeshop-client/internal/product"
	"rupeeshop-client/internal/user"
)

// Outbound rate tiers. Auth calls get the strict budget, everything else the
// general one.
const (
	limitStrict  = rate.Limit(2)
	burstStrict  = 5
	limitGeneral = rate.Limit(10)
	burstGeneral = 20
)

const alreadyInWishlistMessage = "Already in wishlist"

type restAdapter struct {
	baseURL        string
	httpClient     *http.Client
	authLimiter    *rate.Limiter
	generalLimiter *rate.Limiter
}

// NewREST returns the live adapter for the shop backend. Each request is a
// single attempt bounded by the given timeout.
func NewREST(baseURL string, timeout time.Duration) Adapter {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &restAdapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		authLimiter:    rate.NewLimiter(limitStrict, burstStrict),
		generalLimiter: rate.NewLimiter(limitGeneral, burstGeneral),
	}
}

// do issues one request and returns the response body. Non-2xx responses are
// mapped to *APIError carrying the server's error or message field.
func (a *restAdapter) do(ctx context.Context, limiter *rate.Limiter, method, endpoint, path string, payload any) ([]byte, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", method),
		zap.String("path", path),
	)

	if err := limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			log.Error("failed to marshal request payload", zap.Error(err))
			return nil, err
		}
		body = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		metrics.RemoteRequests.WithLabelValues(endpoint, "network_error").Inc()
		log.Error("backend request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	metrics.RemoteRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Warn("backend returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(bodyBytes),
		}
	}

	return bodyBytes, nil
}

// errorMessage extracts the error or message field from an error payload.
func errorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}

func (a *restAdapter) FetchProducts(ctx context.Context) ([]product.Product, error) {
	body, err := a.do(ctx, a.generalLimiter, http.MethodGet, "products", "/api/products/", nil)
	if err != nil {
		return nil, err
	}

	var products []product.Product
	if err := json.Unmarshal(body, &products); err != nil {
		logger.FromCtx(ctx).Error("failed decoding product catalog", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (a *restAdapter) Login(ctx context.Context, email, password string) (user.User, error) {
	payload := map[string]string{"email": email, "password": password}

	body, err := a.do(ctx, a.authLimiter, http.MethodPost, "login", "/api/login/", payload)
	if err != nil {
		return user.User{}, err
	}

	var u user.User
	if err := json.Unmarshal(body, &u); err != nil {
		logger.FromCtx(ctx).Error("failed decoding login response", zap.Error(err))
		return user.User{}, err
	}
	return u, nil
}

func (a *restAdapter) Register(ctx context.Context, name, email, password string) (user.User, error) {
	payload := map[string]string{"name": name, "email": email, "password": password}

	body, err := a.do(ctx, a.authLimiter, http.MethodPost, "register", "/api/register/", payload)
	if err != nil {
		return user.User{}, err
	}

	var u user.User
	if err := json.Unmarshal(body, &u); err != nil {
		logger.FromCtx(ctx).Error("failed decoding register response", zap.Error(err))
		return user.User{}, err
	}
	return u, nil
}

func (a *restAdapter) FetchWishlist(ctx context.Context, userID int) ([]int, error) {
	path := fmt.Sprintf("/api/wishlist/%d/", userID)

	body, err := a.do(ctx, a.generalLimiter, http.MethodGet, "wishlist_list", path, nil)
	if err != nil {
		return nil, err
	}

	var entries []struct {
		Product int `json:"product"`
	}
	if err := json.Unmarshal(body, &entries); err != nil {
		logger.FromCtx(ctx).Error("failed decoding wishlist response", zap.Error(err))
		return nil, err
	}

	ids := make([]int, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.Product)
	}
	return ids, nil
}

func (a *restAdapter) AddToWishlist(ctx context.Context, userID, productID int) error {
	path := fmt.Sprintf("/api/wishlist/%d/add/", userID)
	payload := map[string]int{"product": productID}

	_, err := a.do(ctx, a.generalLimiter, http.MethodPost, "wishlist_add", path, payload)
	if err != nil {
		if APIMessage(err) == alreadyInWishlistMessage {
			return ErrAlreadyInWishlist
		}
		return err
	}
	return nil
}

func (a *restAdapter) RemoveFromWishlist(ctx context.Context, userID, productID int) error {
	payload := map[string]int{"user_id": userID, "product_id": productID}

	_, err := a.do(ctx, a.generalLimiter, http.MethodDelete, "wishlist_delete", "/api/wishlist/delete/", payload)
	return err
}

func (a *restAdapter) FetchOrders(ctx context.Context, userID int) ([]order.RawOrder, error) {
	path := fmt.Sprintf("/api/user/%d/orders/", userID)

	body, err := a.do(ctx, a.generalLimiter, http.MethodGet, "orders_list", path, nil)
	if err != nil {
		return nil, err
	}

	var orders []order.RawOrder
	if err := json.Unmarshal(body, &orders); err != nil {
		logger.FromCtx(ctx).Error("failed decoding orders response", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (a *restAdapter) PlaceOrder(ctx context.Context, userID int, draft order.Draft) (order.Order, error) {
	path := fmt.Sprintf("/api/user/%d/orders/", userID)

	body, err := a.do(ctx, a.generalLimiter, http.MethodPost, "orders_place", path, draft)
	if err != nil {
		return order.Order{}, err
	}

	var placed order.Order
	if err := json.Unmarshal(body, &placed); err != nil {
		logger.FromCtx(ctx).Error("failed decoding placed order", zap.Error(err))
		return order.Order{}, err
	}
	return placed, nil
}

func (a *restAdapter) AddReview(ctx context.Context, productID int, review product.Review) error {
	path := fmt.Sprintf("/products/%d/reviews/add/", productID)
	payload := map[string]any{
		"userId":  review.UserID,
		"rating":  review.Rating,
		"comment": review.Comment,
		"date":    review.Date,
	}

	_, err := a.do(ctx, a.generalLimiter, http.MethodPost, "review_add", path, payload)
	return err
}
