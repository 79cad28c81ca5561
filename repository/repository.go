package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"coingarden/models"

	"github.com/lib/pq"
)

const (
	// Минимальный интервал между пингами активности.
	pingMinGap = 300 * time.Second
	// Окно, в котором считаются пинги для начисления монеты.
	pingWindow = time.Hour
	// Каждый двенадцатый пинг в окне приносит монету.
	pingsPerCoin = 12
	// Порог пассивного начисления: чуть меньше номинальных пяти минут,
	// чтобы поглотить дрейф клиентских часов.
	passiveAwardMinInterval = 295 * time.Second
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) PostgresRepository {
	return PostgresRepository{db: db}
}

func (r PostgresRepository) GetUserByUsername(
	ctx context.Context,
	username string,
) (models.User, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, username, password_hash, coins, earnings_cents, passive_progress, last_passive_award
		 FROM users WHERE username=$1`,
		username,
	)
	var u models.User
	var lastAward sql.NullTime
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Coins,
		&u.EarningsCents,
		&u.PassiveProgress,
		&lastAward,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrNotFound
		}
		return models.User{}, err
	}
	if lastAward.Valid {
		u.LastPassiveAward = &lastAward.Time
	}
	return u, nil
}

func (r PostgresRepository) CreateUser(
	ctx context.Context,
	username, passwordHash string,
) (int, error) {
	var id int
	err := r.db.QueryRowContext(
		ctx,
		"INSERT INTO users (username, password_hash, coins) VALUES ($1, $2, 0) RETURNING id",
		username, passwordHash,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return 0, models.ErrConflict
		}
		return 0, err
	}
	return id, nil
}

func (r PostgresRepository) SearchUsernames(
	ctx context.Context,
	query string,
	limit int,
) ([]string, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT username FROM users WHERE username LIKE '%' || $1 || '%' LIMIT $2",
		query, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		usernames = append(usernames, name)
	}
	return usernames, rows.Err()
}

// ReplaceShopItems целиком заменяет витрину владельца в одной транзакции:
// читатель видит либо полностью старый, либо полностью новый набор.
func (r PostgresRepository) ReplaceShopItems(
	ctx context.Context,
	owner string,
	items []models.ShopItem,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(
		ctx,
		"DELETE FROM shop_items WHERE owner_username=$1",
		owner,
	); err != nil {
		return err
	}

	for _, item := range items {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO shop_items (owner_username, item_name, item_description, price, item_data)
			 VALUES ($1, $2, $3, $4, $5)`,
			owner, item.Name, item.Description, item.Price, item.Data,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r PostgresRepository) GetShopItems(
	ctx context.Context,
	owner string,
) ([]models.ShopItem, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, owner_username, item_name, item_description, price, item_data
		 FROM shop_items WHERE owner_username=$1`,
		owner,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ShopItem
	for rows.Next() {
		var item models.ShopItem
		var desc, data sql.NullString
		if err := rows.Scan(
			&item.ID,
			&item.Owner,
			&item.Name,
			&desc,
			&item.Price,
			&data,
		); err != nil {
			return nil, err
		}
		item.Description = desc.String
		item.Data = data.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// PurchaseItem выполняет покупку одной транзакцией: списание монет
// покупателя, начисление 70% цены в центах продавцу и запись покупки.
// Строка покупателя блокируется FOR UPDATE, поэтому при конкурентных
// покупках с балансом ровно на одну успешна максимум одна.
func (r PostgresRepository) PurchaseItem(
	ctx context.Context,
	buyer, target, itemName string,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var price int
	err = tx.QueryRowContext(
		ctx,
		"SELECT price FROM shop_items WHERE owner_username=$1 AND item_name=$2",
		target, itemName,
	).Scan(&price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrNotFound
		}
		return err
	}

	var coins int
	err = tx.QueryRowContext(
		ctx,
		"SELECT coins FROM users WHERE username=$1 FOR UPDATE",
		buyer,
	).Scan(&coins)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrNotFound
		}
		return err
	}
	if coins < price {
		return models.ErrInsufficientFunds
	}

	// Целочисленное деление: floor(price * 0.7) без плавающей точки.
	earningsCents := price * 70 / 100

	if _, err := tx.ExecContext(
		ctx,
		"UPDATE users SET coins = coins - $1 WHERE username=$2",
		price, buyer,
	); err != nil {
		return err
	}

	res, err := tx.ExecContext(
		ctx,
		"UPDATE users SET earnings_cents = earnings_cents + $1 WHERE username=$2",
		earningsCents, target,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNotFound
	}

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO purchases (buyer_username, target_username, item_name, price, purchase_time, executed)
		 VALUES ($1, $2, $3, $4, now(), FALSE)`,
		buyer, target, itemName, price,
	); err != nil {
		return err
	}
	return tx.Commit()
}

func (r PostgresRepository) GetPendingActions(
	ctx context.Context,
	target string,
) ([]models.Purchase, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, buyer_username, target_username, item_name, price, purchase_time, executed
		 FROM purchases
		 WHERE target_username=$1 AND executed=FALSE
		 ORDER BY purchase_time DESC`,
		target,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []models.Purchase
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(
			&p.ID,
			&p.Buyer,
			&p.Target,
			&p.ItemName,
			&p.Price,
			&p.PurchaseTime,
			&p.Executed,
		); err != nil {
			return nil, err
		}
		actions = append(actions, p)
	}
	return actions, rows.Err()
}

// MarkActionExecuted помечает покупку выполненной, только если вызывающий
// является её адресатом. Для чужой записи запрос молча не меняет ничего.
func (r PostgresRepository) MarkActionExecuted(
	ctx context.Context,
	actionID int,
	target string,
) error {
	_, err := r.db.ExecContext(
		ctx,
		"UPDATE purchases SET executed=TRUE WHERE id=$1 AND target_username=$2 AND executed=FALSE",
		actionID, target,
	)
	return err
}

// RecordActivityPing фиксирует пинг активности и начисляет монету за каждый
// двенадцатый пинг в скользящем часовом окне. Проверка интервала, вставка и
// подсчёт идут в одной транзакции под блокировкой строки пользователя,
// поэтому два конкурентных пинга не пройдут 300-секундный порог вдвоём.
func (r PostgresRepository) RecordActivityPing(
	ctx context.Context,
	username string,
) (int, int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	var userID int
	err = tx.QueryRowContext(
		ctx,
		"SELECT id FROM users WHERE username=$1 FOR UPDATE",
		username,
	).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, models.ErrNotFound
		}
		return 0, 0, err
	}

	var sinceLast sql.NullFloat64
	err = tx.QueryRowContext(
		ctx,
		"SELECT EXTRACT(EPOCH FROM now() - MAX(ping_time)) FROM activity_pings WHERE username=$1",
		username,
	).Scan(&sinceLast)
	if err != nil {
		return 0, 0, err
	}
	if sinceLast.Valid {
		elapsed := time.Duration(sinceLast.Float64 * float64(time.Second))
		if elapsed < pingMinGap {
			return 0, 0, &models.RateLimitError{RetryAfter: pingMinGap - elapsed}
		}
	}

	if _, err := tx.ExecContext(
		ctx,
		"INSERT INTO activity_pings (username, ping_time) VALUES ($1, now())",
		username,
	); err != nil {
		return 0, 0, err
	}

	var pingCount int
	err = tx.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM activity_pings
		 WHERE username=$1 AND ping_time >= now() - $2 * interval '1 second'`,
		username, int(pingWindow.Seconds()),
	).Scan(&pingCount)
	if err != nil {
		return 0, 0, err
	}

	coinsEarned := 0
	if pingCount >= pingsPerCoin && pingCount%pingsPerCoin == 0 {
		if _, err := tx.ExecContext(
			ctx,
			"UPDATE users SET coins = coins + 1 WHERE username=$1",
			username,
		); err != nil {
			return 0, 0, err
		}
		coinsEarned = 1
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return pingCount, coinsEarned, nil
}

func (r PostgresRepository) SavePassiveProgress(
	ctx context.Context,
	username, progress string,
) error {
	res, err := r.db.ExecContext(
		ctx,
		"UPDATE users SET passive_progress=$1 WHERE username=$2",
		progress, username,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r PostgresRepository) LoadPassiveProgress(
	ctx context.Context,
	username string,
) (string, error) {
	var progress string
	err := r.db.QueryRowContext(
		ctx,
		"SELECT passive_progress FROM users WHERE username=$1",
		username,
	).Scan(&progress)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", models.ErrNotFound
		}
		return "", err
	}
	return progress, nil
}

// AwardPassiveCoin начисляет монету не чаще, чем раз в
// passiveAwardMinInterval. Проверка и начисление - один условный UPDATE,
// так что из N конкурентных вызовов успешен максимум один.
func (r PostgresRepository) AwardPassiveCoin(
	ctx context.Context,
	username string,
) (int, error) {
	var newBalance int
	err := r.db.QueryRowContext(
		ctx,
		`UPDATE users SET coins = coins + 1, last_passive_award = now()
		 WHERE username=$1
		   AND (last_passive_award IS NULL OR now() - last_passive_award >= $2 * interval '1 second')
		 RETURNING coins`,
		username, int(passiveAwardMinInterval.Seconds()),
	).Scan(&newBalance)
	if err == nil {
		return newBalance, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	// Либо пользователя нет, либо порог ещё не прошёл.
	var sinceLast sql.NullFloat64
	err = r.db.QueryRowContext(
		ctx,
		"SELECT EXTRACT(EPOCH FROM now() - last_passive_award) FROM users WHERE username=$1",
		username,
	).Scan(&sinceLast)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, models.ErrNotFound
		}
		return 0, err
	}
	retryAfter := passiveAwardMinInterval
	if sinceLast.Valid {
		retryAfter -= time.Duration(sinceLast.Float64 * float64(time.Second))
	}
	if retryAfter < 0 {
		retryAfter = 0
	}
	return 0, &models.RateLimitError{RetryAfter: retryAfter}
}

func (r PostgresRepository) AddCoins(
	ctx context.Context,
	username string,
	amount int,
) (int, error) {
	var newBalance int
	err := r.db.QueryRowContext(
		ctx,
		"UPDATE users SET coins = coins + $1 WHERE username=$2 RETURNING coins",
		amount, username,
	).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, models.ErrNotFound
		}
		return 0, err
	}
	return newBalance, nil
}

func (r PostgresRepository) GetStats(ctx context.Context) (models.AdminStats, error) {
	var stats models.AdminStats
	err := r.db.QueryRowContext(
		ctx,
		"SELECT COALESCE(SUM(coins), 0), COALESCE(SUM(earnings_cents), 0), COUNT(*) FROM users",
	).Scan(&stats.TotalCoins, &stats.TotalEarningsCents, &stats.UserCount)
	if err != nil {
		return models.AdminStats{}, err
	}

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT username, coins, earnings_cents FROM users
		 ORDER BY earnings_cents DESC LIMIT 10`,
	)
	if err != nil {
		return models.AdminStats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var e models.TopEarner
		if err := rows.Scan(&e.Username, &e.Coins, &e.EarningsCents); err != nil {
			return models.AdminStats{}, err
		}
		stats.TopEarners = append(stats.TopEarners, e)
	}
	return stats, rows.Err()
}

func (r PostgresRepository) ResetPassiveState(
	ctx context.Context,
	username string,
) error {
	res, err := r.db.ExecContext(
		ctx,
		"UPDATE users SET passive_progress='', last_passive_award=NULL WHERE username=$1",
		username,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r PostgresRepository) ResetAllPassiveState(ctx context.Context) error {
	_, err := r.db.ExecContext(
		ctx,
		"UPDATE users SET passive_progress='', last_passive_award=NULL",
	)
	return err
}

func (r PostgresRepository) ListPassiveStates(
	ctx context.Context,
) ([]models.PassiveRecord, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT username, passive_progress FROM users WHERE passive_progress <> ''",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.PassiveRecord
	for rows.Next() {
		var rec models.PassiveRecord
		if err := rows.Scan(&rec.Username, &rec.Progress); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
