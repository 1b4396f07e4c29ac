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

	"stockroom/inventory/model"
)

const (
	IdempotencyHeader = "X-Idempotency-Key"
	maxKeyLength      = 255
)

//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	return guard(IdempotencyCache, req, next)
}

// guard runs next at most once per (path, key). A repeat of a completed
// request gets the cached payload back, a repeat of a running one is
// aborted, and a failed request frees the key for another attempt.
func guard(store entryStore, req middleware.Request, next middleware.Next) middleware.Response {
	idempotencyKey, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	ctx := req.Context()
	bodyHash := generateBodyHash(req)
	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      idempotencyKey,
	}

	entry, cacheErr := store.Get(ctx, cacheKey)
	if cacheErr == nil {
		return handleExistingEntry(req, next, entry, bodyHash, idempotencyKey)
	}
	if !errors.Is(cacheErr, cache.Miss) {
		rlog.Error("failed to read idempotency entry", "error", cacheErr, "key", idempotencyKey)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	if err := markAsProcessing(ctx, store, cacheKey, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	response := next(req)

	if response.Err != nil {
		deleteCacheEntry(ctx, store, cacheKey)
	} else {
		markAsCompleted(ctx, store, cacheKey, bodyHash, response)
	}
	return response
}

// extractIdempotencyKey extracts and validates the idempotency key from headers
func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var idempotencyKey string
	if headers := req.Data().Headers; headers != nil {
		idempotencyKey = strings.TrimSpace(headers.Get(IdempotencyHeader))
	}

	if idempotencyKey == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: IdempotencyHeader + " header is required"}
	}
	if len(idempotencyKey) > maxKeyLength {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: IdempotencyHeader + " header is too long"}
	}
	return idempotencyKey, nil
}

func generateBodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}
	return hashing(bodyBytes)
}

func handleExistingEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, bodyHash, idempotencyKey string) middleware.Response {
	if err := validateBodyHash(entry, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.Status {
	case model.IdempotencyProcessing:
		rlog.Info("concurrent request detected", "key", idempotencyKey)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}
	case model.IdempotencyCompleted:
		return handleCompletedEntry(req, next, entry, idempotencyKey)
	default:
		rlog.Warn("unknown idempotency status, processing as new request", "key", idempotencyKey, "status", entry.Status)
		return next(req)
	}
}

func validateBodyHash(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

// handleCompletedEntry decodes the cached payload into the endpoint's
// response type. A payload that no longer decodes is served fresh.
func handleCompletedEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, idempotencyKey string) middleware.Response {
	api := req.Data().API
	if len(entry.Response) > 0 && api != nil && api.ResponseType != nil {
		responseValue := reflect.New(api.ResponseType.Elem()).Interface()
		err := json.Unmarshal(entry.Response, responseValue)
		if err == nil {
			rlog.Info("returning cached response", "key", idempotencyKey)
			return middleware.Response{Payload: responseValue}
		}
		rlog.Error("failed to decode cached response", "error", err, "key", idempotencyKey)
	}
	return next(req)
}

func markAsProcessing(ctx context.Context, store entryStore, cacheKey model.IdempotencyKey, bodyHash string) *errs.Error {
	err := store.Set(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:          model.IdempotencyProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       time.Now(),
	})
	if err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}
	}
	return nil
}

func deleteCacheEntry(ctx context.Context, store entryStore, cacheKey model.IdempotencyKey) {
	if _, err := store.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to clear failed request from cache", "error", err)
	}
}

func markAsCompleted(ctx context.Context, store entryStore, cacheKey model.IdempotencyKey, bodyHash string, response middleware.Response) {
	completed := model.IdempotencyCacheEntry{
		Status:          model.IdempotencyCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			deleteCacheEntry(ctx, store, cacheKey)
			return
		}
		completed.Response = payloadBytes
	}

	if err := store.Set(ctx, cacheKey, completed); err != nil {
		rlog.Error("failed to cache successful response", "error", err)
	}
}

func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
