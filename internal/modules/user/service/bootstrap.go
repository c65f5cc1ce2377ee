package service

import (
	"errors"
	"strings"

	"blog-platform-server/internal/config"
	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/model"
	"blog-platform-server/internal/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EnsureBootstrapAdmin 确保配置中的引导管理员账号存在且具有管理员角色。
// 已存在的账号只提升角色并启用，不会覆盖其密码。
func (s *Service) EnsureBootstrapAdmin(cfg config.BootstrapAdminConfig) error {
	if !cfg.Enabled {
		return nil
	}

	email := utils.NormalizeEmail(cfg.Email)
	if ok, msg := utils.ValidateEmail(email); !ok {
		return errors.New("引导管理员邮箱无效: " + msg)
	}

	user, err := s.userStore.FindByEmail(email)
	if err == nil {
		if user.Role == consts.RoleAdmin && user.IsActive {
			return nil
		}
		if err := s.userStore.UpdateByID(user.ID, map[string]interface{}{
			"role":      consts.RoleAdmin,
			"is_active": true,
		}); err != nil {
			return err
		}
		log.Info().Str("email", email).Msg("✅ 已将引导账号提升为管理员")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if ok, msg := utils.ValidatePassword(cfg.Password); !ok {
		return errors.New("引导管理员密码无效: " + msg)
	}
	hashed, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = "Temp Admin"
	}
	if err := s.userStore.Create(&model.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     consts.RoleAdmin,
		IsActive: true,
	}); err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("✅ 已创建引导管理员账号")
	return nil
}
