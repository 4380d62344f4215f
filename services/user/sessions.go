package user

import (
	"context"

	"clinicbook/utils"

	"go.uber.org/zap"
)

// recordSession stores a hash of the issued token in the auth cache for the
// token's lifetime. Only the hash is kept; the cache is an audit surface for
// active sessions, not a validation dependency, so failures are logged and
// swallowed.
func (s *DefaultUserService) recordSession(ctx context.Context, userID, token string) {
	cache := utils.GetAuthCacheClient()
	if cache == nil {
		return
	}
	key := utils.AuthCachePrefix + utils.HashToken(token)
	if err := cache.Set(ctx, key, userID, tokenLifetime).Err(); err != nil {
		utils.GetLogger().Warn("failed to record session", zap.Error(err))
	}
}
