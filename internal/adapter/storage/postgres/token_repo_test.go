package postgres

import (
	"context"
	"testing"

	"did-payment-splitter/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	token   = common.HexToAddress("0x0000000000000000000000000000000000000070")
	custody = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

func amountRow(v string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"amount"}).AddRow(v)
}

func TestTokenRepo_BalanceOf(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)
	huge := "115792089237316195423570985008687907853269984665640564039457584007913129639935"

	mock.ExpectQuery("SELECT amount::text FROM token_balances").
		WithArgs(token.Bytes(), alice.Bytes()).
		WillReturnRows(amountRow(huge))
	mock.ExpectQuery("SELECT amount::text FROM token_balances").
		WithArgs(token.Bytes(), bob.Bytes()).
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.BalanceOf(context.Background(), token, alice)
	require.NoError(t, err)
	assert.Equal(t, huge, got.Dec())

	got, err = repo.BalanceOf(context.Background(), token, bob)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_Allowance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT amount::text FROM token_allowances").
		WithArgs(token.Bytes(), alice.Bytes(), custody.Bytes()).
		WillReturnRows(amountRow("500"))

	got, err := NewTokenRepo(mock).Allowance(context.Background(), token, alice, custody)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), got.Uint64())
}

func TestTokenRepo_Approve(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO token_allowances").
		WithArgs(token.Bytes(), alice.Bytes(), custody.Bytes(), "1000").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = NewTokenRepo(mock).Approve(context.Background(), token, alice, custody, uint256.NewInt(1000))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_Transfer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE token_balances SET amount = amount -").
		WithArgs(token.Bytes(), alice.Bytes(), "150").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO token_balances").
		WithArgs(token.Bytes(), bob.Bytes(), "150").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = NewTokenRepo(mock).Transfer(context.Background(), token, alice, bob, uint256.NewInt(150))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_Transfer_InsufficientBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE token_balances SET amount = amount -").
		WithArgs(token.Bytes(), alice.Bytes(), "150").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = NewTokenRepo(mock).Transfer(context.Background(), token, alice, bob, uint256.NewInt(150))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_Transfer_ZeroIsNoop(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	err = NewTokenRepo(mock).Transfer(context.Background(), token, alice, bob, new(uint256.Int))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_Transfer_SelfChecksBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)

	mock.ExpectQuery("SELECT amount::text FROM token_balances").
		WithArgs(token.Bytes(), alice.Bytes()).
		WillReturnRows(amountRow("100"))
	mock.ExpectQuery("SELECT amount::text FROM token_balances").
		WithArgs(token.Bytes(), alice.Bytes()).
		WillReturnRows(amountRow("100"))

	assert.NoError(t, repo.Transfer(context.Background(), token, alice, alice, uint256.NewInt(100)))
	assert.ErrorIs(t, repo.Transfer(context.Background(), token, alice, alice, uint256.NewInt(101)),
		domain.ErrInsufficientBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_Transfer_Overflow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE token_balances SET amount = amount -").
		WithArgs(token.Bytes(), alice.Bytes(), "1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO token_balances").
		WithArgs(token.Bytes(), bob.Bytes(), "1").
		WillReturnError(&pgconn.PgError{Code: "23514", ConstraintName: "token_balances_amount_uint256"})

	err = NewTokenRepo(mock).Transfer(context.Background(), token, alice, bob, uint256.NewInt(1))
	assert.ErrorIs(t, err, domain.ErrBalanceOverflow)
}

func TestTokenRepo_TransferFrom(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE token_allowances SET amount = amount -").
		WithArgs(token.Bytes(), alice.Bytes(), custody.Bytes(), "1000").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE token_balances SET amount = amount -").
		WithArgs(token.Bytes(), alice.Bytes(), "1000").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO token_balances").
		WithArgs(token.Bytes(), custody.Bytes(), "1000").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = NewTokenRepo(mock).TransferFrom(context.Background(), token, custody, alice, custody, uint256.NewInt(1000))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_TransferFrom_InsufficientAllowance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE token_allowances SET amount = amount -").
		WithArgs(token.Bytes(), alice.Bytes(), custody.Bytes(), "1000").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = NewTokenRepo(mock).TransferFrom(context.Background(), token, custody, alice, custody, uint256.NewInt(1000))
	assert.ErrorIs(t, err, domain.ErrInsufficientAllowance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_Mint(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO token_balances").
		WithArgs(token.Bytes(), alice.Bytes(), "10000").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = NewTokenRepo(mock).Mint(context.Background(), token, alice, uint256.NewInt(10000))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
