package domain

import (
	"errors"
)

// Сигнальные ошибки доменного уровня. REST-слой сопоставляет их
// с HTTP-кодами через errors.Is.
var (
	ErrNotFound           = errors.New("запись не найдена")
	ErrUnauthorizedAccess = errors.New("доступ запрещен")
	ErrInvalidCredentials = errors.New("неверный логин или пароль")
	ErrAlreadyExists      = errors.New("запись уже существует")
	ErrConflict           = errors.New("конфликт данных")
	ErrInvalidInput       = errors.New("некорректные данные")
)
