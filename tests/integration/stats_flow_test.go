package integration

import (
	"net/http"
	"testing"
)

func TestStatsFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "alice", "password123")

	t.Run("empty stats for new user", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/stats/summary", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["total_bills"].(float64) != 0 {
			t.Errorf("expected total_bills=0, got %v", result["total_bills"])
		}
		if result["total_amount"].(float64) != 0 {
			t.Errorf("expected total_amount=0, got %v", result["total_amount"])
		}
	})

	t.Run("aggregates paid and unpaid bills", func(t *testing.T) {
		// Due today, unpaid, inside the upcoming window.
		app.createBill(t, token,
			`{"name":"Water","amount":40,"recurrence_type":"interval","recurrence_days":14,"start_date":"`+today()+`"}`)

		// Paid: due date pushed 30 days out by the payment.
		paidID := app.createBill(t, token,
			`{"name":"Internet","amount":60,"recurrence_type":"interval","recurrence_days":30,"start_date":"`+today()+`"}`)
		rec := app.request("POST", "/api/v1/bills/"+paidID+"/payments", `{"amount":60}`, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create payment failed: %d %s", rec.Code, rec.Body.String())
		}

		rec = app.request("GET", "/api/v1/stats/summary", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["total_bills"].(float64) != 2 {
			t.Errorf("expected total_bills=2, got %v", result["total_bills"])
		}
		if result["total_amount"].(float64) != 100 {
			t.Errorf("expected total_amount=100, got %v", result["total_amount"])
		}
		if result["paid_bills"].(float64) != 1 {
			t.Errorf("expected paid_bills=1, got %v", result["paid_bills"])
		}
		if result["unpaid_bills"].(float64) != 1 {
			t.Errorf("expected unpaid_bills=1, got %v", result["unpaid_bills"])
		}
		if result["due_amount"].(float64) != 40 {
			t.Errorf("expected due_amount=40, got %v", result["due_amount"])
		}
		if result["upcoming_bills"].(float64) != 1 {
			t.Errorf("expected upcoming_bills=1, got %v", result["upcoming_bills"])
		}
	})

	t.Run("stats are scoped to the user", func(t *testing.T) {
		otherToken, _ := app.registerUser(t, "bob", "password123")

		rec := app.request("GET", "/api/v1/stats/summary", "", otherToken)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["total_bills"].(float64) != 0 {
			t.Errorf("expected total_bills=0 for other user, got %v", result["total_bills"])
		}
	})
}
