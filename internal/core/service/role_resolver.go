package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-manager/internal/api/metrics"
	"github.com/99minutos/user-manager/internal/core/domain"
	"github.com/99minutos/user-manager/internal/core/ports"
)

// RoleResolver maps role ids to names, reading through an optional cache.
//
// A role that cannot be found, or a lookup that fails, resolves to
// domain.FallbackRoleName instead of failing the caller. Every fallback is
// logged at warn and counted in metrics.RoleFallbackTotal.
type RoleResolver struct {
	roles ports.RoleRepository
	cache ports.RoleCache
	log   zerolog.Logger
}

// NewRoleResolver creates a RoleResolver. cache may be nil.
func NewRoleResolver(roles ports.RoleRepository, cache ports.RoleCache, log zerolog.Logger) *RoleResolver {
	return &RoleResolver{roles: roles, cache: cache, log: log}
}

func (r *RoleResolver) ResolveName(ctx context.Context, roleID string) string {
	if r.cache != nil {
		name, ok, err := r.cache.GetName(ctx, roleID)
		switch {
		case err != nil:
			metrics.RoleCacheLookupsTotal.WithLabelValues("error").Inc()
			r.log.Warn().Err(err).Str("role_id", roleID).Msg("role cache lookup failed")
		case ok:
			metrics.RoleCacheLookupsTotal.WithLabelValues("hit").Inc()
			return name
		default:
			metrics.RoleCacheLookupsTotal.WithLabelValues("miss").Inc()
		}
	}

	role, err := r.roles.FindByID(ctx, roleID)
	if err != nil {
		metrics.RoleFallbackTotal.Inc()
		r.log.Warn().Err(err).
			Str("role_id", roleID).
			Str("fallback", domain.FallbackRoleName).
			Msg("role not resolved, using fallback role")
		return domain.FallbackRoleName
	}

	if r.cache != nil {
		if err := r.cache.SetName(ctx, role.ID, role.Name); err != nil {
			r.log.Warn().Err(err).Str("role_id", roleID).Msg("role cache write failed")
		}
	}
	return role.Name
}
