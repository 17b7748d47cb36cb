package courier_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storecourier/internal/adapters/out/courier"
	"storecourier/internal/core/domain/model/address"
	"storecourier/internal/core/domain/model/carrier"
	"storecourier/internal/core/domain/model/directory"
	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/model/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selection(t *testing.T, code, name, addr, dept, manager, phone string) wizard.Selection {
	t.Helper()

	p, err := kernel.NewPhone(phone)
	require.NoError(t, err)
	m, err := directory.NewManager(kernel.NewUUID(), manager, p)
	require.NoError(t, err)
	d, err := directory.NewDepartment(dept, []directory.Manager{m})
	require.NoError(t, err)
	s, err := directory.NewStore(kernel.NewUUID(), code, name, addr, []directory.Department{d})
	require.NoError(t, err)
	sel, err := wizard.NewSelection(s, dept, m)
	require.NoError(t, err)
	return sel
}

func submissionRequest(t *testing.T) carrier.SubmissionRequest {
	t.Helper()

	return carrier.SubmissionRequest{
		RequestID:    kernel.NewUUID(),
		DeliveryType: wizard.StoreToStore,
		Origin:       selection(t, "A001", "StoreA", "서울 강남구 테헤란로 152", "여성", "manager1", "01012345678"),
		Destination:  selection(t, "B001", "StoreB", "서울 중구 을지로 30", "남성", "manager2", "0212345678"),
		OriginAddress: address.NewConverted("서울 강남구 테헤란로 152", address.GeocodeResult{
			Sido: "서울특별시", Sigungu: "강남구", AdminDong: "역삼1동", LegalDong: "역삼동",
		}),
		DestinationAddress: address.NewDegraded("서울 중구 을지로 30"),
		Payload: carrier.Payload{
			Kind:       "1",
			ItemType:   "2",
			Doc:        "1",
			SFast:      "1",
			PayGbn:     carrier.PayPrepaid,
			PickupDate: "20250901111500",
			PickHour:   "11",
			PickMin:    "15",
			PickSec:    "00",
			ReasonDesc: carrier.ReasonDesc,
			OrderMemo:  carrier.OrderMemo,
		},
	}
}

func TestClient_Submit_SendsAuthenticatedRequest(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/pickups", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"success":true,"message":"접수되었습니다"}`))
	}))
	defer srv.Close()

	req := submissionRequest(t)
	res, err := courier.NewClient(srv.URL, "secret", srv.Client()).Submit(t.Context(), req)

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "접수되었습니다", res.Message)

	payload, ok := body["payload"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "20250901111500", payload["pickup_date"])
	assert.Equal(t, "1", payload["pay_gbn"])
	assert.Equal(t, req.RequestID.String(), body["request_id"])

	origin, ok := body["origin"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "서울특별시 강남구 역삼1동", origin["dong_address"])
	assert.Equal(t, "01012345678", origin["manager_phone"])

	destination, ok := body["destination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "서울 중구 을지로 30", destination["dong_address"])
}

func TestClient_Submit_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "success false", status: http.StatusOK, body: `{"success":false,"message":"주소 오류"}`, message: "주소 오류"},
		{name: "error status with message", status: http.StatusBadRequest, body: `{"message":"픽업 불가 지역"}`, message: "픽업 불가 지역"},
		{name: "success false without message", status: http.StatusOK, body: `{"success":false}`, message: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			res, err := courier.NewClient(srv.URL, "secret", srv.Client()).Submit(t.Context(), submissionRequest(t))

			require.NoError(t, err)
			assert.False(t, res.Success)
			assert.Equal(t, tt.message, res.Message)
		})
	}
}

func TestClient_Submit_UnreadableAnswerIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	_, err := courier.NewClient(srv.URL, "secret", srv.Client()).Submit(t.Context(), submissionRequest(t))
	assert.Error(t, err)
}

func TestClient_Submit_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close()

	_, err := courier.NewClient(srv.URL, "secret", nil).Submit(t.Context(), submissionRequest(t))
	assert.Error(t, err)
}
