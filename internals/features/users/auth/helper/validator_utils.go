package helper

import (
	"errors"
	"regexp"
	"strings"
)

// Validasi Email (regex simple)
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func ValidateRegisterInput(userName, email, password string) error {
	if strings.TrimSpace(userName) == "" {
		return errors.New("ユーザー名は必須です")
	}
	if len(userName) < 3 || len(userName) > 50 {
		return errors.New("ユーザー名は3〜50文字で入力してください")
	}
	if !isValidEmail(email) {
		return errors.New("メールアドレスの形式が正しくありません")
	}
	if len(password) < 8 {
		return errors.New("パスワードは8文字以上で入力してください")
	}
	return nil
}

func ValidateLoginInput(identifier, password string) error {
	if strings.TrimSpace(identifier) == "" {
		return errors.New("メールアドレスまたはユーザー名を入力してください")
	}
	if password == "" {
		return errors.New("パスワードを入力してください")
	}
	return nil
}

func ValidateNewPassword(password string) error {
	if len(password) < 8 {
		return errors.New("パスワードは8文字以上で入力してください")
	}
	return nil
}
