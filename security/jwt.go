package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"marketplace-chat/config/common"
	"marketplace-chat/entity"
)

const ClaimUserID = "user_id"

type JWT struct {
	secret   []byte
	ttl      time.Duration
	audience string
	now      func() time.Time
}

func NewJWT(config *common.Config) *JWT {
	return &JWT{
		secret:   config.GetJwtConfig(),
		ttl:      config.GetJwtTTL(),
		audience: config.GetAppConfig(),
		now:      time.Now,
	}
}

func (j *JWT) GenerateToken(user *entity.User) (string, error) {
	now := j.now()
	claims := jwt.MapClaims{
		ClaimUserID: user.ID,
		"aud":       j.audience,
		"iss":       j.audience,
		"iat":       now.Unix(),
		"exp":       now.Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(j.secret)
}

func (j *JWT) VerifyJwtToken(token string) (jwt.MapClaims, error) {
	tokenParse, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithAudience(j.audience),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := tokenParse.Claims.(jwt.MapClaims)
	if !ok || !tokenParse.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func (j *JWT) GetUserIdFromToken(token string) (string, error) {
	claims, err := j.VerifyJwtToken(token)
	if err != nil {
		return "", err
	}
	return UserIDFromClaims(claims)
}

// UserIDFromClaims reads the subject user id written by GenerateToken.
func UserIDFromClaims(claims jwt.MapClaims) (string, error) {
	userID, ok := claims[ClaimUserID].(string)
	if !ok || userID == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return userID, nil
}

func (j *JWT) Secret() []byte {
	return j.secret
}
