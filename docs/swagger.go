// Package docs Map Memoir API.
//
// Бэкенд для генерации видео-мемуаров о путешествиях. Превращает текст
// воспоминаний в историю, озвучку и анимацию полёта камеры для
// Google Earth Studio.
//
// Основные возможности:
// - Извлечение и геокодирование локаций из свободного текста
// - Генерация истории путешествия и таймлайна поездки
// - Синтез речи через цепочку TTS-провайдеров
// - Синтез траектории камеры и экспорт Earth Studio проекта
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
