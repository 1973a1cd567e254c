package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/ethereum"
	"github.com/x-xyz/nftmarket/domain"
)

const defaultTokenTtl = 24 * time.Hour

type AuthUseCaseCfg struct {
	JwtSecret string
	// SigningMsgTemplate is formatted with the lowercased address to build the message a caller signs
	SigningMsgTemplate string
	TokenTtl           time.Duration
}

type impl struct {
	jwtSecret []byte
	template  string
	ttl       time.Duration
}

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	ttl := cfg.TokenTtl
	if ttl <= 0 {
		ttl = defaultTokenTtl
	}
	return &impl{
		jwtSecret: []byte(cfg.JwtSecret),
		template:  cfg.SigningMsgTemplate,
		ttl:       ttl,
	}
}

func (im *impl) SigningMessage() string {
	return im.template
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	msg := fmt.Sprintf(im.template, address.ToLowerStr())
	if ok, err := ethereum.IsSignedBy([]byte(msg), signature, string(address)); err != nil {
		ctx.WithField("err", err).Warn("ethereum.IsSignedBy failed")
		return "", domain.ErrInvalidSignature
	} else if !ok {
		return "", domain.ErrInvalidSignature
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(im.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}

	return "", domain.ErrInvalidSignature
}
