package room

import "github.com/rusunawa-id/booking-service/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
