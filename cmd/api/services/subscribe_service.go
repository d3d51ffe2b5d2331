package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"byp-site/cmd/api/clients/listclient"
	"byp-site/internal/logger"
)

// ErrInvalidEmail 은 구독 요청 이메일 형식이 올바르지 않을 때 반환된다.
var ErrInvalidEmail = errors.New("invalid email address")

// SubscribeService 는 뉴스레터 구독을 이메일 리스트 API 로 전달한다.
type SubscribeService struct {
	client *listclient.Client
}

func NewSubscribeService(client *listclient.Client) *SubscribeService {
	return &SubscribeService{client: client}
}

func (s *SubscribeService) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	if err := s.client.Subscribe(ctx, email); err != nil {
		logger.ErrorWithFields("subscribe failed", logger.Fields{"error": err.Error()})
		return err
	}
	return nil
}
