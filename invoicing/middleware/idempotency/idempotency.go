package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"
)

// HeaderName carries the operator-supplied idempotency key.
const HeaderName = "X-Idempotency-Key"

//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := hashPayload(req)

	cacheKey := CacheKey{
		Resource: req.Data().Path,
		Key:      key,
	}

	entry, cacheErr := Cache.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if errors.Is(cacheErr, cache.Miss) {
			if err := markProcessing(req.Context(), cacheKey); err != nil {
				return middleware.Response{Err: err}
			}

			response := next(req)

			if response.Err != nil {
				// Clear the processing marker so the operator can retry.
				clearEntry(req.Context(), cacheKey)
			} else {
				storeResponse(req.Context(), cacheKey, bodyHash, response)
			}

			return response
		}

		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	return replayEntry(req, next, entry, bodyHash, key)
}

// extractKey reads and validates the idempotency key header.
func extractKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(HeaderName))
	}
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: HeaderName + " header is required"}
	}
	return key, nil
}

// hashPayload fingerprints the request body so a reused key with a different
// payload is rejected instead of silently replayed.
func hashPayload(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// replayEntry resolves a request whose key was seen before.
func replayEntry(req middleware.Request, next middleware.Next, entry CacheEntry, bodyHash, key string) middleware.Response {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return middleware.Response{
			Err: &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"},
		}
	}

	switch entry.Status {
	case StatusProcessing:
		rlog.Info("concurrent request detected", "key", key)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}
	case StatusCompleted:
		return replayCompleted(req, next, entry, key)
	default:
		rlog.Warn("unknown cache entry status, processing as new request", "key", key, "status", entry.Status)
		return next(req)
	}
}

// replayCompleted rebuilds the typed response from the cached JSON.
func replayCompleted(req middleware.Request, next middleware.Next, entry CacheEntry, key string) middleware.Response {
	if len(entry.Response) > 0 {
		rlog.Info("returning cached response", "key", key)

		responseType := req.Data().API.ResponseType
		if responseType != nil {
			responseValue := reflect.New(responseType.Elem()).Interface()
			if err := json.Unmarshal(entry.Response, responseValue); err == nil {
				return middleware.Response{Payload: responseValue}
			}
			rlog.Error("failed to unmarshal cached response", "key", key)
		}
	}

	// Corrupted cache entry, process as a new request.
	return next(req)
}

func markProcessing(ctx context.Context, cacheKey CacheKey) *errs.Error {
	if err := Cache.Set(ctx, cacheKey, CacheEntry{
		Status:    StatusProcessing,
		CreatedAt: time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}
	}
	return nil
}

func clearEntry(ctx context.Context, cacheKey CacheKey) {
	if _, err := Cache.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to clear failed request from cache", "error", err)
	}
}

func storeResponse(ctx context.Context, cacheKey CacheKey, bodyHash string, response middleware.Response) {
	entry := CacheEntry{
		Status:          StatusCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return
		}
		entry.Response = payloadBytes
	}

	if err := Cache.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to cache successful response", "error", err)
	}
}
