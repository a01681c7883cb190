package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/goportfolio/internal/domain"
)

// Ledger rows keep their values as text in the canonical dot-decimal form.
// The parsing layer tolerates older rows written with a comma decimal
// separator, so reads never fail on legacy formatting.

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool, retrier *Retrier) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		retrier: retrier,
	}
}

// List returns every transaction ordered by date, then ID.
func (r *TransactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	var transactions []domain.Transaction

	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT id, tx_date, ticker, quantity, unit_price, fees
			 FROM transactions
			 ORDER BY tx_date, id`)
		if err != nil {
			return err
		}
		defer rows.Close()

		transactions = transactions[:0]
		for rows.Next() {
			var t domain.Transaction
			var date, quantity, unitPrice, fees string
			if err := rows.Scan(&t.ID, &date, &t.Ticker, &quantity, &unitPrice, &fees); err != nil {
				return err
			}
			t.Date = domain.ParseDate(date)
			t.Quantity = domain.ParseDecimal(quantity)
			t.UnitPrice = domain.ParseDecimal(unitPrice)
			t.Fees = domain.ParseDecimal(fees)
			transactions = append(transactions, t)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// Add inserts a transaction.
func (r *TransactionRepository) Add(ctx context.Context, transaction *domain.Transaction) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO transactions (id, tx_date, ticker, quantity, unit_price, fees)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			transaction.ID,
			domain.FormatDate(transaction.Date),
			transaction.Ticker,
			domain.FormatDecimal(transaction.Quantity),
			domain.FormatDecimal(transaction.UnitPrice),
			domain.FormatDecimal(transaction.Fees),
		)
		return err
	})
}

// Delete removes a transaction by ID.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrTransactionNotFound
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var t domain.Transaction

	err := r.retrier.Retry(ctx, func() error {
		var date, quantity, unitPrice, fees string
		err := r.pool.QueryRow(ctx,
			`SELECT id, tx_date, ticker, quantity, unit_price, fees
			 FROM transactions
			 WHERE id = $1`, id).
			Scan(&t.ID, &date, &t.Ticker, &quantity, &unitPrice, &fees)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrTransactionNotFound
			}
			return err
		}
		t.Date = domain.ParseDate(date)
		t.Quantity = domain.ParseDecimal(quantity)
		t.UnitPrice = domain.ParseDecimal(unitPrice)
		t.Fees = domain.ParseDecimal(fees)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &t, nil
}
