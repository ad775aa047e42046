package handler

import (
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"cinema_booking/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGateway() *VNPay {
	return &VNPay{Config: model.VNPayConfig{
		TmnCode:    "TESTTMN",
		HashSecret: "testsecret",
		BaseURL:    "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		ReturnURL:  "http://localhost:8002/vnpay/return",
		IPNURL:     "http://localhost:8002/vnpay/ipn",
	}}
}

// signedCallback builds a gateway callback query with a valid secure hash.
func signedCallback(v *VNPay, overrides map[string]string) url.Values {
	q := url.Values{}
	q.Set("vnp_TxnRef", "ORD-AB12CD34")
	q.Set("vnp_ResponseCode", "00")
	q.Set("vnp_Amount", "15000000") // 150 000 VND x100
	q.Set("vnp_BankCode", "NCB")
	q.Set("vnp_TransactionNo", "14226112")
	q.Set("vnp_PayDate", "20260828153000")
	for k, val := range overrides {
		q.Set(k, val)
	}
	q.Set("vnp_SecureHash", v.SignQuery(q))
	return q
}

func TestBuildPaymentUrl(t *testing.T) {
	v := testGateway()

	got, err := v.BuildPaymentUrl(model.PaymentRequest{
		Amount:    150000,
		OrderInfo: "Thanh toan don hang ORD-AB12CD34",
		TxnRef:    "ORD-AB12CD34",
		IPAddr:    "127.0.0.1",
	})
	require.NoError(t, err)

	parsed, err := url.Parse(got)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, v.Config.BaseURL))

	q := parsed.Query()
	assert.Equal(t, "2.1.0", q.Get("vnp_Version"))
	assert.Equal(t, "TESTTMN", q.Get("vnp_TmnCode"))
	assert.Equal(t, "15000000", q.Get("vnp_Amount"), "amount is multiplied by 100")
	assert.Equal(t, "ORD-AB12CD34", q.Get("vnp_TxnRef"))
	assert.NotEmpty(t, q.Get("vnp_SecureHash"))

	// the hash must cover the sorted query without the hash itself
	hash := q.Get("vnp_SecureHash")
	q.Del("vnp_SecureHash")
	assert.Equal(t, v.SignQuery(q), hash)
}

func TestVerifyReturnUrlSuccess(t *testing.T) {
	v := testGateway()
	resp := v.VerifyReturnUrl(signedCallback(v, nil))

	assert.True(t, resp.IsSuccess)
	assert.Equal(t, "ORD-AB12CD34", resp.TxnRef)
	assert.Equal(t, int64(150000), resp.Amount)
	assert.Equal(t, "00", resp.ResponseCode)
	assert.Equal(t, "NCB", resp.BankCode)
	assert.Equal(t, "14226112", resp.GatewayTxn)
}

func TestVerifyReturnUrlNonZeroCodesFailUniformly(t *testing.T) {
	v := testGateway()

	// user abandoned, insufficient funds, unknown error: all just failures
	for _, code := range []string{"24", "51", "99", "07"} {
		resp := v.VerifyReturnUrl(signedCallback(v, map[string]string{"vnp_ResponseCode": code}))
		assert.False(t, resp.IsSuccess, "code %s must not be success", code)
		assert.Equal(t, "Payment failed", resp.Message, "code %s must fail uniformly", code)
		assert.Equal(t, code, resp.ResponseCode)
	}
}

func TestVerifyReturnUrlRejectsTamperedHash(t *testing.T) {
	v := testGateway()

	q := signedCallback(v, nil)
	q.Set("vnp_Amount", "1") // tamper after signing

	resp := v.VerifyReturnUrl(q)
	assert.False(t, resp.IsSuccess)
	assert.Equal(t, "Invalid hash", resp.Message)
}

func TestVerifyReturnUrlIgnoresSecureHashType(t *testing.T) {
	v := testGateway()

	q := signedCallback(v, nil)
	q.Set("vnp_SecureHashType", "HMACSHA512")

	resp := v.VerifyReturnUrl(q)
	assert.True(t, resp.IsSuccess)
}

func TestGatewayReportedFailure(t *testing.T) {
	v := testGateway()

	declined := v.VerifyReturnUrl(signedCallback(v, map[string]string{"vnp_ResponseCode": "24"}))
	assert.True(t, gatewayReportedFailure(declined))

	forged := signedCallback(v, map[string]string{"vnp_ResponseCode": "24"})
	forged.Set("vnp_SecureHash", "deadbeef")
	assert.False(t, gatewayReportedFailure(v.VerifyReturnUrl(forged)),
		"a bad signature is not a gateway verdict")

	ok := v.VerifyReturnUrl(signedCallback(v, nil))
	assert.False(t, gatewayReportedFailure(ok))
}

func TestVNPayReturnRequiresTxnRef(t *testing.T) {
	app := fiber.New()
	app.Get("/vnpay/return", VNPayReturn)

	req := httptest.NewRequest(fiber.MethodGet, "/vnpay/return?vnp_ResponseCode=00&vnp_Amount=15000000", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "vnp_TxnRef")
}

func TestVerifyIPN(t *testing.T) {
	v := testGateway()

	resp := v.VerifyIPN(signedCallback(v, nil))
	assert.True(t, resp.IsSuccess)
	assert.Equal(t, "ORD-AB12CD34", resp.TxnRef)
	assert.Equal(t, "14226112", resp.GatewayTxn)

	bad := signedCallback(v, nil)
	bad.Set("vnp_SecureHash", "deadbeef")
	resp = v.VerifyIPN(bad)
	assert.False(t, resp.IsSuccess)
	assert.Empty(t, resp.TxnRef, "unverified IPN must not expose a txn ref")
}

func TestParseCallbackData(t *testing.T) {
	q := url.Values{}
	q.Set("vnp_TxnRef", "ORD-XY99ZZ11")
	q.Set("vnp_ResponseCode", "24")
	q.Set("vnp_Amount", "7000000")
	q.Set("vnp_BankCode", "VCB")
	q.Set("vnp_TransactionNo", "555")
	q.Set("vnp_PayDate", "20260828120000")
	q.Set("vnp_OrderInfo", "whatever")

	data := ParseCallbackData(q)
	assert.Equal(t, "ORD-XY99ZZ11", data.TxnRef)
	assert.Equal(t, "24", data.ResponseCode)
	assert.Equal(t, int64(70000), data.Amount, "amount comes back divided by 100")
	assert.Equal(t, "VCB", data.BankCode)
	assert.Equal(t, "555", data.TransactionNo)
}
