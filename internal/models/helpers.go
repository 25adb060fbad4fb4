package models

import (
	"net/url"
	"strings"
)

// Slugify выводит URL-безопасный идентификатор из названия упражнения
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// PlaceholderImage возвращает детерминированный URL картинки-заглушки по названию
func PlaceholderImage(name string) string {
	return "https://placehold.co/200x200/1e293b/0ea5e9?text=" + url.QueryEscape(name)
}
