package models

import (
	"errors"
	"fmt"
	"time"
)

type User struct {
	ID               int
	Username         string
	PasswordHash     string
	Coins            int
	EarningsCents    int
	PassiveProgress  string
	LastPassiveAward *time.Time
}

type ShopItem struct {
	ID          int
	Owner       string
	Name        string
	Description string
	Price       int
	Data        string
}

type Purchase struct {
	ID           int
	Buyer        string
	Target       string
	ItemName     string
	Price        int
	PurchaseTime time.Time
	Executed     bool
}

type PassiveRecord struct {
	Username string
	Progress string
}

type TopEarner struct {
	Username      string
	Coins         int
	EarningsCents int
}

type AdminStats struct {
	TotalCoins         int
	TotalEarningsCents int
	UserCount          int
	TopEarners         []TopEarner
}

// Сентинельные ошибки, по которым handlers выбирают HTTP-статус.
var (
	ErrValidation        = errors.New("некорректные параметры запроса")
	ErrNotFound          = errors.New("не найдено")
	ErrUnauthorized      = errors.New("требуется авторизация")
	ErrConflict          = errors.New("имя пользователя уже занято")
	ErrInsufficientFunds = errors.New("недостаточно монет")
)

// RateLimitError несёт оставшееся время ожидания до следующей попытки.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("слишком часто: подождите ещё %d сек", int(e.RetryAfter.Seconds()))
}
