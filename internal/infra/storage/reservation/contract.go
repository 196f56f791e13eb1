package reservation

import (
	"github.com/tak4ma/VMS-BanquetService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
