// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// fakeHTTPServer blocks in ListenAndServe until Shutdown.
type fakeHTTPServer struct {
	listenErr   error
	shutdownErr error
	listens     atomic.Int32
	shutdowns   atomic.Int32
	started     chan struct{}
	stop        chan struct{}
}

func newFakeHTTPServer() *fakeHTTPServer {
	return &fakeHTTPServer{started: make(chan struct{}, 1), stop: make(chan struct{})}
}

func (f *fakeHTTPServer) ListenAndServe() error {
	f.listens.Add(1)
	select {
	case f.started <- struct{}{}:
	default:
	}
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.stop
	return http.ErrServerClosed
}

func (f *fakeHTTPServer) Shutdown(context.Context) error {
	f.shutdowns.Add(1)
	close(f.stop)
	return f.shutdownErr
}

var _ suture.Service = (*HTTPServerService)(nil)

func TestNewHTTPServerService_DefaultTimeout(t *testing.T) {
	for _, d := range []time.Duration{0, -5 * time.Second} {
		if svc := NewHTTPServerService(newFakeHTTPServer(), d); svc.shutdownTimeout != 10*time.Second {
			t.Errorf("timeout %v: got %v, want 10s", d, svc.shutdownTimeout)
		}
	}
	if svc := NewHTTPServerService(newFakeHTTPServer(), time.Second); svc.String() != "http-server" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestHTTPServerService_Serve(t *testing.T) {
	t.Run("shuts down on context cancellation", func(t *testing.T) {
		server := newFakeHTTPServer()
		svc := NewHTTPServerService(server, time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- svc.Serve(ctx) }()

		<-server.started
		cancel()

		select {
		case err := <-errCh:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("err = %v, want context.Canceled", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("Serve did not return")
		}
		if server.listens.Load() != 1 || server.shutdowns.Load() != 1 {
			t.Errorf("listens=%d shutdowns=%d", server.listens.Load(), server.shutdowns.Load())
		}
	})

	t.Run("returns startup failure", func(t *testing.T) {
		bindErr := errors.New("bind: address already in use")
		server := newFakeHTTPServer()
		server.listenErr = bindErr

		err := NewHTTPServerService(server, time.Second).Serve(context.Background())
		if !errors.Is(err, bindErr) {
			t.Errorf("err = %v, want %v", err, bindErr)
		}
	})

	t.Run("returns shutdown failure", func(t *testing.T) {
		shutdownErr := errors.New("shutdown timeout")
		server := newFakeHTTPServer()
		server.shutdownErr = shutdownErr
		svc := NewHTTPServerService(server, time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- svc.Serve(ctx) }()

		<-server.started
		cancel()
		if err := <-errCh; !errors.Is(err, shutdownErr) {
			t.Errorf("err = %v, want %v", err, shutdownErr)
		}
	})
}

func TestHTTPServerService_RealServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	server := &http.Server{
		Addr: addr,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
		ReadHeaderTimeout: time.Second,
	}
	svc := NewHTTPServerService(server, time.Second)

	sup := suture.New("test-sup", suture.Spec{Timeout: 2 * time.Second})
	sup.Add(svc)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	var resp *http.Response
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if resp, err = http.Get("http://" + addr + "/"); err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server never answered: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}

	cancel()
	<-errCh
	if _, err := http.Get("http://" + addr + "/"); err == nil {
		t.Error("server still answering after shutdown")
	}
}
