package handler

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"did-payment-splitter/internal/adapter/http/middleware"
	"did-payment-splitter/internal/adapter/storage/memory"
	"did-payment-splitter/internal/core/domain"
	"did-payment-splitter/internal/service"
	"did-payment-splitter/pkg/metrics"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testAPI is a router over the in-memory backend.
type testAPI struct {
	t      *testing.T
	router *gin.Engine
	sig    *service.EthSignatureService
	admin  *service.AdminServiceImpl
	tokens map[common.Address]string
}

type account struct {
	key  *ecdsa.PrivateKey
	addr common.Address
}

func newAccount(t *testing.T) account {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return account{key: key, addr: crypto.PubkeyToAddress(key.PublicKey)}
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	log := zerolog.Nop()

	ledger := memory.NewLedger()
	token := memory.NewToken()
	tx := memory.NewTransactor()
	registryRepo := memory.NewRegistryRepository()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	events := service.NewEventService(log, m)

	adminSvc := service.NewAdminService(memory.NewAdminRepository(), tx, events, m, log)
	registrySvc := service.NewRegistryService(registryRepo, ledger, adminSvc, tx, events, m, log)
	paymentSvc := service.NewPaymentService(registryRepo, ledger, token, tx, events, custodyAddr, m, log)
	tokenSvc := service.NewTokenAccountService(token, adminSvc, tx, log)
	sigSvc := service.NewEthSignatureService()

	router := SetupRouter(RouterDeps{
		AdminSvc:    adminSvc,
		RegistrySvc: registrySvc,
		PaymentSvc:  paymentSvc,
		TokenSvc:    tokenSvc,
		SigSvc:      sigSvc,
		SessionSvc:  service.NewJWTSessionService("router-test-secret", time.Hour, "did-payment-splitter"),
		NonceStore:  memory.NewNonceStore(),
		Custody:     custodyAddr,
		Signature:   middleware.DefaultSignatureOptions(),
		Metrics:     m,
		Gatherer:    reg,
		Mode:        gin.TestMode,
		Logger:      log,
	})

	return &testAPI{t: t, router: router, sig: sigSvc, admin: adminSvc, tokens: map[common.Address]string{}}
}

// signed sends a request authenticated by signature with the given nonce.
func (a *testAPI) signed(acct account, method, path, body, nonce string) *httptest.ResponseRecorder {
	a.t.Helper()
	ts := time.Now().Unix()
	msg := a.sig.BuildCanonicalString(method, path, ts, nonce, body)
	sig, err := a.sig.Sign(acct.key, msg)
	require.NoError(a.t, err)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderPrincipal, acct.addr.Hex())
	req.Header.Set(middleware.HeaderSignature, hexutil.Encode(sig))
	req.Header.Set(middleware.HeaderTimestamp, strconv.FormatInt(ts, 10))
	req.Header.Set(middleware.HeaderNonce, nonce)

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// login exchanges a signed request for a session token.
func (a *testAPI) login(acct account) {
	a.t.Helper()
	w := a.signed(acct, http.MethodPost, "/api/v1/auth/token", "", uuid.NewString())
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	data := bodyData(a.t, w)
	a.tokens[acct.addr] = data["token"].(string)
}

// call sends a request with the account's bearer token, or anonymously
// when acct is nil.
func (a *testAPI) call(acct *account, method, path string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var payload string
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(a.t, err)
		payload = string(b)
	}
	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if acct != nil {
		req.Header.Set("Authorization", "Bearer "+a.tokens[acct.addr])
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) createIdentity(acct account, referrer domain.DID) map[string]interface{} {
	a.t.Helper()
	var body interface{}
	if referrer != domain.NoDID {
		body = map[string]string{"referrer": referrer.Hex()}
	}
	w := a.call(&acct, http.MethodPost, "/api/v1/identities", body)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return bodyData(a.t, w)
}

func (a *testAPI) balance(p common.Address) string {
	a.t.Helper()
	w := a.call(nil, http.MethodGet, "/api/v1/tokens/"+tokenAddr.Hex()+"/balances/"+p.Hex(), nil)
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	return bodyData(a.t, w)["balance"].(string)
}

func bodyData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data: %s", w.Body.String())
	return data
}

func TestRouter_PaymentFlow(t *testing.T) {
	api := newTestAPI(t)
	owner, operator, vendor, user, aff := newAccount(t), newAccount(t), newAccount(t), newAccount(t), newAccount(t)

	require.NoError(t, api.admin.Bootstrap(context.Background(), owner.addr))
	for _, acct := range []account{owner, operator, vendor, user, aff} {
		api.login(acct)
	}

	w := api.call(&owner, http.MethodPost, "/api/v1/admin/whitelist", map[string]string{"principal": operator.addr.Hex()})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	affDID := api.createIdentity(aff, domain.NoDID)["id"].(string)
	w = api.call(&operator, http.MethodPost, "/api/v1/affiliates", map[string]string{"id": affDID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	userIdentity := api.createIdentity(user, common.HexToHash(affDID))
	assert.Equal(t, affDID, userIdentity["referrer"])
	userDID := userIdentity["id"].(string)

	vendorDID := api.createIdentity(vendor, domain.NoDID)["id"].(string)
	w = api.call(&operator, http.MethodPost, "/api/v1/vendors", map[string]string{"id": vendorDID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.call(&owner, http.MethodPost, "/api/v1/tokens/"+tokenAddr.Hex()+"/mint",
		map[string]string{"to": user.addr.Hex(), "amount": "1000"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.call(&user, http.MethodPost, "/api/v1/tokens/"+tokenAddr.Hex()+"/approve",
		map[string]string{"spender": custodyAddr.Hex(), "amount": "1000"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.call(&user, http.MethodPost, "/api/v1/payments", map[string]interface{}{
		"token":              tokenAddr.Hex(),
		"sender":             userDID,
		"recipient":          vendorDID,
		"amount":             "1000",
		"affiliate1_percent": 10,
		"affiliate2_percent": 50,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	payouts := bodyData(t, w)["payouts"].([]interface{})
	require.Len(t, payouts, 2)

	assert.Equal(t, "0", api.balance(user.addr))
	assert.Equal(t, "100", api.balance(aff.addr))
	assert.Equal(t, "900", api.balance(vendor.addr))
	assert.Equal(t, "0", api.balance(custodyAddr))

	// A second payment has nothing left to spend.
	w = api.call(&user, http.MethodPost, "/api/v1/payments", map[string]interface{}{
		"token":     tokenAddr.Hex(),
		"sender":    userDID,
		"recipient": vendorDID,
		"amount":    "1",
	})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	// Removing the vendor blocks further payments to it.
	w = api.call(&operator, http.MethodDelete, "/api/v1/vendors/"+vendorDID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = api.call(nil, http.MethodGet, "/api/v1/vendors/"+vendorDID, nil)
	assert.Equal(t, false, bodyData(t, w)["active"])
}

func TestRouter_OnlyWhitelistedRegisters(t *testing.T) {
	api := newTestAPI(t)
	owner, user := newAccount(t), newAccount(t)
	require.NoError(t, api.admin.Bootstrap(context.Background(), owner.addr))
	api.login(owner)
	api.login(user)

	did := api.createIdentity(user, domain.NoDID)["id"].(string)

	// The owner is not whitelisted by default.
	w := api.call(&owner, http.MethodPost, "/api/v1/vendors", map[string]string{"id": did})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.call(&user, http.MethodPost, "/api/v1/admin/whitelist", map[string]string{"principal": user.addr.Hex()})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_MutationsRequireAuth(t *testing.T) {
	api := newTestAPI(t)

	w := api.call(nil, http.MethodPost, "/api/v1/identities", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/identities", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_SignedRequestReplay(t *testing.T) {
	api := newTestAPI(t)
	user := newAccount(t)

	w := api.signed(user, http.MethodPost, "/api/v1/identities", "", "nonce-1")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, user.addr.Hex(), bodyData(t, w)["controller"])

	w = api.signed(user, http.MethodPost, "/api/v1/identities", "", "nonce-1")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_IdentityLifecycle(t *testing.T) {
	api := newTestAPI(t)
	user, other := newAccount(t), newAccount(t)
	api.login(user)
	api.login(other)

	did := api.createIdentity(user, domain.NoDID)["id"].(string)

	w := api.call(nil, http.MethodGet, "/api/v1/identities/"+did+"/controller", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.addr.Hex(), bodyData(t, w)["controller"])

	meta := common.HexToHash("0xbeef").Hex()
	w = api.call(&other, http.MethodPut, "/api/v1/identities/"+did+"/metadata", map[string]string{"metadata": meta})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = api.call(&user, http.MethodPut, "/api/v1/identities/"+did+"/metadata", map[string]string{"metadata": meta})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.call(&user, http.MethodDelete, "/api/v1/identities/"+did, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = api.call(nil, http.MethodGet, "/api/v1/identities/"+did+"/controller", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := bodyData(t, w)
	assert.Equal(t, false, data["active"])
	assert.Equal(t, common.Address{}.Hex(), data["controller"])
}

func TestRouter_HealthMetricsAndNotFound(t *testing.T) {
	api := newTestAPI(t)

	w := api.call(nil, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.call(nil, http.MethodGet, "/api/v1/payments/custody", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, custodyAddr.Hex(), bodyData(t, w)["custody"])

	w = api.call(nil, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")

	w = api.call(nil, http.MethodGet, "/api/v2/nothing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_404")
}

// TestRouter_ConcurrentPayments fires more payments than the payer can
// fund and checks that exactly the fundable ones succeed.
func TestRouter_ConcurrentPayments(t *testing.T) {
	api := newTestAPI(t)
	owner, operator, vendor, user := newAccount(t), newAccount(t), newAccount(t), newAccount(t)

	require.NoError(t, api.admin.Bootstrap(context.Background(), owner.addr))
	for _, acct := range []account{owner, operator, vendor, user} {
		api.login(acct)
	}
	require.Equal(t, http.StatusOK,
		api.call(&owner, http.MethodPost, "/api/v1/admin/whitelist", map[string]string{"principal": operator.addr.Hex()}).Code)

	userDID := api.createIdentity(user, domain.NoDID)["id"].(string)
	vendorDID := api.createIdentity(vendor, domain.NoDID)["id"].(string)
	require.Equal(t, http.StatusOK,
		api.call(&operator, http.MethodPost, "/api/v1/vendors", map[string]string{"id": vendorDID}).Code)

	require.Equal(t, http.StatusCreated, api.call(&owner, http.MethodPost, "/api/v1/tokens/"+tokenAddr.Hex()+"/mint",
		map[string]string{"to": user.addr.Hex(), "amount": "1000"}).Code)
	require.Equal(t, http.StatusOK, api.call(&user, http.MethodPost, "/api/v1/tokens/"+tokenAddr.Hex()+"/approve",
		map[string]string{"spender": custodyAddr.Hex(), "amount": "1000"}).Code)

	const workers = 50
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		declined  atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := api.call(&user, http.MethodPost, "/api/v1/payments", map[string]interface{}{
				"token":     tokenAddr.Hex(),
				"sender":    userDID,
				"recipient": vendorDID,
				"amount":    "30",
			})
			switch w.Code {
			case http.StatusCreated:
				succeeded.Add(1)
			case http.StatusPaymentRequired:
				declined.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(33), succeeded.Load())
	assert.Equal(t, int32(workers-33), declined.Load())
	assert.Equal(t, "10", api.balance(user.addr))
	assert.Equal(t, "990", api.balance(vendor.addr))
	assert.Equal(t, "0", api.balance(custodyAddr))
}
