package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом почтовых уведомлений.
// Ошибки отправки никогда не влияют на судьбу бронирования —
// вызывающая сторона обязана трактовать их как предупреждение.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента почтового сервиса.
// timeout — верхняя граница ожидания одной отправки: зависший почтовый
// сервис не должен задерживать ответ об успешном бронировании.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingConfirmation отправляет письмо-подтверждение бронирования.
// Одна попытка, без ретраев.
func (c *Client) SendBookingConfirmation(ctx context.Context, req *SendConfirmationRequest) error {
	url := fmt.Sprintf("%s/internal/notifications/booking-confirmation", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		c.log.Info("Mailer: confirmation queued for booking_id=%s", req.BookingID)
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("%w: mail service rejected the request", ErrSendFailed)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
