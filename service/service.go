package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"coingarden/models"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -destination=./mocks/mock_repository.go -package=mocks coingarden/service Repository

type Repository interface {
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	CreateUser(ctx context.Context, username, passwordHash string) (int, error)
	SearchUsernames(ctx context.Context, query string, limit int) ([]string, error)
	ReplaceShopItems(ctx context.Context, owner string, items []models.ShopItem) error
	GetShopItems(ctx context.Context, owner string) ([]models.ShopItem, error)
	PurchaseItem(ctx context.Context, buyer, target, itemName string) error
	GetPendingActions(ctx context.Context, target string) ([]models.Purchase, error)
	MarkActionExecuted(ctx context.Context, actionID int, target string) error
	RecordActivityPing(ctx context.Context, username string) (int, int, error)
	SavePassiveProgress(ctx context.Context, username, progress string) error
	LoadPassiveProgress(ctx context.Context, username string) (string, error)
	AwardPassiveCoin(ctx context.Context, username string) (int, error)
	AddCoins(ctx context.Context, username string, amount int) (int, error)
	GetStats(ctx context.Context) (models.AdminStats, error)
	ResetPassiveState(ctx context.Context, username string) error
	ResetAllPassiveState(ctx context.Context) error
	ListPassiveStates(ctx context.Context) ([]models.PassiveRecord, error)
}

type Service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return Service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

const searchLimit = 10

type Profile struct {
	Username         string
	Coins            int
	TotalEarningsUSD float64
}

type PingResult struct {
	PingCount   int
	CoinsEarned int
}

func (s Service) Register(
	ctx context.Context,
	username, password string,
) error {
	if username == "" || password == "" {
		return models.ErrValidation
	}
	hashed, err := bcryptHash(password)
	if err != nil {
		return err
	}
	_, err = s.repo.CreateUser(ctx, username, hashed)
	return err
}

func (s Service) Login(
	ctx context.Context,
	username, password string,
) (string, int, error) {
	if username == "" || password == "" {
		return "", 0, models.ErrValidation
	}
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", 0, models.ErrUnauthorized
		}
		return "", 0, err
	}
	if !bcryptCompare(user.PasswordHash, password) {
		return "", 0, models.ErrUnauthorized
	}
	token, err := generateJWT(username, s.jwtSecret)
	if err != nil {
		return "", 0, err
	}
	return token, user.Coins, nil
}

func (s Service) GetProfile(
	ctx context.Context,
	username string,
) (Profile, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		Username: user.Username,
		Coins:    user.Coins,
		// Единственное место с плавающей точкой: конвертация центов для показа.
		TotalEarningsUSD: float64(user.EarningsCents) / 100.0,
	}, nil
}

func (s Service) SearchUsers(
	ctx context.Context,
	query string,
) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}
	return s.repo.SearchUsernames(ctx, query, searchLimit)
}

func (s Service) RegisterItems(
	ctx context.Context,
	owner string,
	items []models.ShopItem,
) error {
	return s.repo.ReplaceShopItems(ctx, owner, items)
}

func (s Service) GetShopItems(
	ctx context.Context,
	owner string,
) ([]models.ShopItem, error) {
	return s.repo.GetShopItems(ctx, owner)
}

func (s Service) Purchase(
	ctx context.Context,
	buyer, target, itemName string,
) error {
	if target == "" || itemName == "" {
		return models.ErrValidation
	}
	return s.repo.PurchaseItem(ctx, buyer, target, itemName)
}

func (s Service) GetPendingActions(
	ctx context.Context,
	target string,
) ([]models.Purchase, error) {
	return s.repo.GetPendingActions(ctx, target)
}

func (s Service) MarkActionExecuted(
	ctx context.Context,
	actionID int,
	target string,
) error {
	return s.repo.MarkActionExecuted(ctx, actionID, target)
}

func (s Service) RecordActivityPing(
	ctx context.Context,
	username string,
) (PingResult, error) {
	count, earned, err := s.repo.RecordActivityPing(ctx, username)
	if err != nil {
		return PingResult{}, err
	}
	return PingResult{PingCount: count, CoinsEarned: earned}, nil
}

func (s Service) SavePassiveProgress(
	ctx context.Context,
	username, progress string,
) error {
	return s.repo.SavePassiveProgress(ctx, username, progress)
}

func (s Service) LoadPassiveProgress(
	ctx context.Context,
	username string,
) (string, error) {
	return s.repo.LoadPassiveProgress(ctx, username)
}

func (s Service) ClaimPassiveCoin(
	ctx context.Context,
	username string,
) (int, error) {
	return s.repo.AwardPassiveCoin(ctx, username)
}

func (s Service) AddCoins(
	ctx context.Context,
	username string,
	amount int,
) (int, error) {
	if username == "" || amount <= 0 {
		return 0, models.ErrValidation
	}
	return s.repo.AddCoins(ctx, username, amount)
}

func (s Service) GetStats(ctx context.Context) (models.AdminStats, error) {
	return s.repo.GetStats(ctx)
}

// ResetPassiveState сбрасывает пассивное состояние одного пользователя,
// а при пустом имени - всех сразу.
func (s Service) ResetPassiveState(
	ctx context.Context,
	username string,
) error {
	if username == "" {
		return s.repo.ResetAllPassiveState(ctx)
	}
	return s.repo.ResetPassiveState(ctx, username)
}

// CheckPassiveIntegrity возвращает имена пользователей с повреждённым
// пассивным состоянием: blob обязан содержать массив passiveCoins с полями
// progress и isComplete у каждого элемента и целое currentGrowingCoin.
func (s Service) CheckPassiveIntegrity(ctx context.Context) ([]string, error) {
	records, err := s.repo.ListPassiveStates(ctx)
	if err != nil {
		return nil, err
	}
	var corrupted []string
	for _, rec := range records {
		if !passiveProgressValid(rec.Progress) {
			corrupted = append(corrupted, rec.Username)
		}
	}
	return corrupted, nil
}

func passiveProgressValid(blob string) bool {
	var state map[string]interface{}
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		return false
	}
	coins, ok := state["passiveCoins"].([]interface{})
	if !ok {
		return false
	}
	current, ok := state["currentGrowingCoin"].(float64)
	if !ok || current != math.Trunc(current) {
		return false
	}
	for _, el := range coins {
		obj, ok := el.(map[string]interface{})
		if !ok {
			return false
		}
		if _, ok := obj["progress"]; !ok {
			return false
		}
		if _, ok := obj["isComplete"]; !ok {
			return false
		}
	}
	return true
}

func bcryptHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func bcryptCompare(hashed, password string) bool {
	err := bcrypt.CompareHashAndPassword(
		[]byte(hashed),
		[]byte(password),
	)
	return err == nil
}

func generateJWT(
	username string,
	secret string,
) (string, error) {
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		jwt.MapClaims{
			"username": username,
			"exp":      time.Now().Add(24 * time.Hour).Unix(),
		},
	)
	tokenStr, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}
	return tokenStr, nil
}
