package list_packages

import "errors"

// ErrCatalogUnavailable возвращается, когда каталог недоступен или пуст
// Синтетические пакеты не подставляются: вызывающая сторона показывает
// повтор и альтернативный канал связи
var ErrCatalogUnavailable = errors.New("list_packages: catalog unavailable")
