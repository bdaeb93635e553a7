package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	cfgpkg "github.com/andrewmaci/KebabManager/internal/config"
	"github.com/andrewmaci/KebabManager/internal/events"
	"github.com/andrewmaci/KebabManager/internal/order"
	"github.com/andrewmaci/KebabManager/internal/runtime"
	httpserver "github.com/andrewmaci/KebabManager/internal/server/http"
	logpkg "github.com/andrewmaci/KebabManager/pkg/log"
)

func startTestAPI(t *testing.T) (*httptest.Server, *runtime.Runtime) {
	t.Helper()
	logger := logpkg.NewLogger(logpkg.WithLevel(logpkg.ErrorLevel), logpkg.WithOutput(io.Discard))
	rt, err := runtime.Open(runtime.Options{Config: cfgpkg.Default(), Logger: logger})
	if err != nil {
		t.Fatalf("rt open: %v", err)
	}
	ts := httptest.NewServer(httpserver.New(rt).Handler())
	t.Cleanup(func() {
		ts.Close()
		_ = rt.Close()
	})
	return ts, rt
}

func TestOrderCreateAndList(t *testing.T) {
	ts, _ := startTestAPI(t)
	base := func() string { return ts.URL }

	cmd := newOrderCreateCommand(base)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--customer", "Jan", "--kebab", "Doner", "--size", "L", "--sauce", "garlic", "--meat", "chicken", "--date", "2024-01-01"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("create: %v", err)
	}
	var created order.Order
	if err := json.Unmarshal(buf.Bytes(), &created); err != nil {
		t.Fatalf("decode create output: %v", err)
	}
	if created.ID == "" {
		t.Fatal("no id in create output")
	}

	listCmd := newOrderListCommand(base)
	buf.Reset()
	listCmd.SetOut(buf)
	listCmd.SetErr(buf)
	listCmd.SetArgs([]string{"--date", "2024-01-01"})
	if err := listCmd.Execute(); err != nil {
		t.Fatalf("list: %v", err)
	}
	var orders []order.Order
	if err := json.Unmarshal(buf.Bytes(), &orders); err != nil {
		t.Fatalf("decode list output: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != created.ID {
		t.Fatalf("list output: %+v", orders)
	}
}

func TestOrderCreateValidatesLocally(t *testing.T) {
	cmd := newOrderCreateCommand(func() string { return "http://unreachable.invalid" })
	cmd.SetArgs([]string{"--customer", "Jan"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected validation error for missing fields")
	}
}

func TestOrderDelete(t *testing.T) {
	ts, rt := startTestAPI(t)
	base := func() string { return ts.URL }

	o := order.New(order.Data{CustomerName: "Jan", KebabType: "Doner", Size: "L", Sauce: "garlic", MeatType: "chicken"})
	if err := rt.Store().Create(context.Background(), o); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cmd := newOrderDeleteCommand(base)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{o.ID})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !strings.Contains(buf.String(), "status:") {
		t.Fatalf("expected status in output, got: %s", buf.String())
	}

	// Second delete surfaces the server's 404 message.
	cmd = newOrderDeleteCommand(base)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{o.ID})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "Order not found") {
		t.Fatalf("expected not-found error, got: %v", err)
	}
}

func TestOrderWatchPrintsEvents(t *testing.T) {
	ts, rt := startTestAPI(t)
	base := func() string { return ts.URL }

	// Broadcast once the watcher's subscriber registers.
	go func() {
		deadline := time.Now().Add(2 * time.Second)
		for rt.Hub().SubscriberCount() == 0 {
			if time.Now().After(deadline) {
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
		o := order.New(order.Data{CustomerName: "Jan", KebabType: "Doner", Size: "L", Sauce: "garlic", MeatType: "chicken"})
		_ = rt.Store().Create(context.Background(), o)
		rt.Hub().Broadcast(events.NewOrder(o))
	}()

	cmd := newOrderWatchCommand(base)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--limit", "1"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("watch: %v", err)
	}
	var line struct {
		Event string `json:"event"`
		Data  struct {
			CustomerName string `json:"customerName"`
		} `json:"data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode watch output: %v", err)
	}
	if line.Event != "new_order" || line.Data.CustomerName != "Jan" {
		t.Fatalf("watch output: %s", buf.String())
	}
}
