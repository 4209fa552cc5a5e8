// Copyright (c) 2024 Neomantra Corp

package book

import "fmt"

var (
	ErrDuplicateRef  = fmt.Errorf("order reference already live")
	ErrUnknownRef    = fmt.Errorf("order reference not found")
	ErrOverExecuted  = fmt.Errorf("executed shares exceed remaining volume")
	ErrOverCancelled = fmt.Errorf("cancelled shares exceed remaining volume")
)
