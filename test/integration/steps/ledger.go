package steps

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"

	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/test/integration/mock"
)

const scenarioDate = "2024-05-01"

// registerLedgerSteps registers steps that address accounts and categories by name.
func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^an account "([^"]*)" exists$`, anAccountExists)
	ctx.Step(`^a category "([^"]*)" of type "([^"]*)" exists$`, aCategoryOfTypeExists)
	ctx.Step(`^I record an? "(expense|income)" of (-?\d+) on "([^"]*)" in "([^"]*)"$`, iRecordOn)
	ctx.Step(`^I record a transfer of (-?\d+) from "([^"]*)" to "([^"]*)" in "([^"]*)"$`, iRecordATransfer)
	ctx.Step(`^I change the amount of the last transaction to (\d+)$`, iChangeTheAmount)
	ctx.Step(`^I turn the last transaction into a transfer to "([^"]*)"$`, iTurnIntoTransfer)
	ctx.Step(`^I turn the last transaction into an? "(expense|income)" in "([^"]*)"$`, iTurnIntoType)
	ctx.Step(`^I delete the last transaction$`, iDeleteTheLastTransaction)
	ctx.Step(`^I send a "([^"]*)" request to the last transaction with body:$`, iSendToTheLastTransaction)
	ctx.Step(`^I delete the (account|category) "([^"]*)"$`, iDeleteTheNamed)
	ctx.Step(`^the balance of "([^"]*)" should be (-?\d+)$`, theBalanceShouldBe)
	ctx.Step(`^the total balance should be (-?\d+)$`, theTotalBalanceShouldBe)
	ctx.Step(`^the ledger audit should be consistent$`, theLedgerAuditShouldBeConsistent)
	ctx.Step(`^the shared rate limiter should have counted (\d+) mutations?$`, theSharedRateLimiterShouldHaveCounted)
}

func scenario(ctx context.Context) (*TestContext, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return nil, fmt.Errorf("test context not found")
	}
	return tc, nil
}

func (tc *TestContext) accountID(name string) (int64, error) {
	id, ok := tc.accounts[name]
	if !ok {
		return 0, fmt.Errorf("account %q was not created in this scenario", name)
	}
	return id, nil
}

func (tc *TestContext) categoryID(name string) (int64, error) {
	id, ok := tc.categories[name]
	if !ok {
		return 0, fmt.Errorf("category %q was not created in this scenario", name)
	}
	return id, nil
}

func anAccountExists(ctx context.Context, name string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}

	var account dto.AccountResponse
	payload := map[string]any{"name": name, "type": "expense", "order": len(tc.accounts)}
	if err := tc.sendJSON(http.MethodPost, "/api/v1/accounts", payload, http.StatusCreated, &account); err != nil {
		return err
	}
	tc.accounts[name] = account.ID
	return nil
}

func aCategoryOfTypeExists(ctx context.Context, name, categoryType string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}

	var category dto.CategoryResponse
	payload := map[string]any{"name": name, "type": categoryType}
	if err := tc.sendJSON(http.MethodPost, "/api/v1/categories", payload, http.StatusCreated, &category); err != nil {
		return err
	}
	tc.categories[name] = category.ID
	return nil
}

// record posts a transaction. A rejected request is left in the response for
// later status assertions instead of failing the step.
func (tc *TestContext) record(payload map[string]any) error {
	payload["date"] = scenarioDate

	var created dto.TransactionMutationResponse
	err := tc.sendJSON(http.MethodPost, "/api/v1/transactions", payload, http.StatusCreated, &created)
	if err != nil && tc.response != nil && tc.response.StatusCode != http.StatusCreated {
		return nil
	}
	if err != nil {
		return err
	}
	tc.lastTransactionID = created.Transaction.ID
	return nil
}

func iRecordOn(ctx context.Context, txnType string, amount int64, accountName, categoryName string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	accountID, err := tc.accountID(accountName)
	if err != nil {
		return err
	}
	categoryID, err := tc.categoryID(categoryName)
	if err != nil {
		return err
	}

	return tc.record(map[string]any{
		"type":        txnType,
		"amount":      amount,
		"account_id":  accountID,
		"category_id": categoryID,
	})
}

func iRecordATransfer(ctx context.Context, amount int64, fromName, toName, categoryName string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	fromID, err := tc.accountID(fromName)
	if err != nil {
		return err
	}
	toID, err := tc.accountID(toName)
	if err != nil {
		return err
	}
	categoryID, err := tc.categoryID(categoryName)
	if err != nil {
		return err
	}

	return tc.record(map[string]any{
		"type":                   "transfer",
		"amount":                 amount,
		"account_id":             fromID,
		"destination_account_id": toID,
		"category_id":            categoryID,
	})
}

func (tc *TestContext) patchLast(payload map[string]any) error {
	if tc.lastTransactionID == 0 {
		return fmt.Errorf("no transaction recorded in this scenario")
	}
	endpoint := fmt.Sprintf("/api/v1/transactions/%d", tc.lastTransactionID)
	return tc.sendJSON(http.MethodPatch, endpoint, payload, http.StatusOK, nil)
}

func iChangeTheAmount(ctx context.Context, amount int64) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	return tc.patchLast(map[string]any{"amount": amount})
}

func iTurnIntoTransfer(ctx context.Context, toName string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	toID, err := tc.accountID(toName)
	if err != nil {
		return err
	}
	return tc.patchLast(map[string]any{"type": "transfer", "destination_account_id": toID})
}

func iTurnIntoType(ctx context.Context, txnType, categoryName string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	categoryID, err := tc.categoryID(categoryName)
	if err != nil {
		return err
	}
	return tc.patchLast(map[string]any{"type": txnType, "category_id": categoryID})
}

func iSendToTheLastTransaction(ctx context.Context, method string, body *godog.DocString) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	if tc.lastTransactionID == 0 {
		return fmt.Errorf("no transaction recorded in this scenario")
	}
	endpoint := fmt.Sprintf("/api/v1/transactions/%d", tc.lastTransactionID)
	return tc.send(method, endpoint, []byte(body.Content))
}

func iDeleteTheLastTransaction(ctx context.Context) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	if tc.lastTransactionID == 0 {
		return fmt.Errorf("no transaction recorded in this scenario")
	}
	endpoint := fmt.Sprintf("/api/v1/transactions/%d", tc.lastTransactionID)
	return tc.sendJSON(http.MethodDelete, endpoint, nil, http.StatusOK, nil)
}

func iDeleteTheNamed(ctx context.Context, kind, name string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}

	var id int64
	if kind == "account" {
		id, err = tc.accountID(name)
	} else {
		id, err = tc.categoryID(name)
	}
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("/api/v1/%s/%d", map[string]string{"account": "accounts", "category": "categories"}[kind], id)
	return tc.send(http.MethodDelete, endpoint, nil)
}

func theBalanceShouldBe(ctx context.Context, accountName string, expected int64) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	accountID, err := tc.accountID(accountName)
	if err != nil {
		return err
	}

	var balance dto.BalanceResponse
	endpoint := fmt.Sprintf("/api/v1/accounts/%d/balance", accountID)
	if err := tc.sendJSON(http.MethodGet, endpoint, nil, http.StatusOK, &balance); err != nil {
		return err
	}
	if balance.Amount != expected {
		return fmt.Errorf("balance of %q expected %d, got %d", accountName, expected, balance.Amount)
	}
	return nil
}

func theTotalBalanceShouldBe(ctx context.Context, expected int64) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}

	var balances dto.BalancesResponse
	if err := tc.sendJSON(http.MethodGet, "/api/v1/balances", nil, http.StatusOK, &balances); err != nil {
		return err
	}
	if balances.Total != expected {
		return fmt.Errorf("total balance expected %d, got %d", expected, balances.Total)
	}
	return nil
}

func theLedgerAuditShouldBeConsistent(ctx context.Context) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}

	var audit dto.AuditResponse
	if err := tc.sendJSON(http.MethodGet, "/api/v1/ledger/audit", nil, http.StatusOK, &audit); err != nil {
		return err
	}
	if !audit.Consistent {
		return fmt.Errorf("ledger audit reported drift: %+v", audit.Drifts)
	}
	return nil
}

func theSharedRateLimiterShouldHaveCounted(ctx context.Context, expected int) error {
	if _, err := scenario(ctx); err != nil {
		return err
	}

	counters := mock.RateLimitCounters()
	if len(counters) != 1 {
		return fmt.Errorf("expected one client window in redis, got %v", counters)
	}
	for client, value := range counters {
		if value != fmt.Sprint(expected) {
			return fmt.Errorf("client %s: expected %d counted mutations, got %s", client, expected, value)
		}
	}
	return nil
}
