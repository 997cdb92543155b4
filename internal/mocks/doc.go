// Package mocks provides centralized mock implementations for testing.
//
// Mocks follow two styles. Function-field mocks (MockJWTService,
// MockCredentialVerifier) fall back to fixed values when a function is not
// set. MockRecordStore is built on testify/mock for tests that assert on
// call arguments.
//
// Usage:
//
//	jwtSvc := &mocks.MockJWTService{
//	    ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//	        return &auth.Claims{Subject: "admin"}, nil
//	    },
//	}
package mocks
