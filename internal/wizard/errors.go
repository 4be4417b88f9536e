package wizard

import "errors"

var (
	// ErrNoPreviousStep возвращается при попытке вернуться с первого шага
	ErrNoPreviousStep = errors.New("wizard: no previous step")

	// ErrWizardCompleted возвращается при любой попытке изменить завершённый мастер
	ErrWizardCompleted = errors.New("wizard: booking already confirmed")

	// ErrStaleResult возвращается, когда результат запроса относится к устаревшей ревизии состояния
	ErrStaleResult = errors.New("wizard: stale result")

	// ErrTransitionRefused возвращается, когда условия перехода на следующий шаг не выполнены
	ErrTransitionRefused = errors.New("wizard: transition refused")

	// ErrInvalidStep возвращается, когда операция недопустима на текущем шаге
	ErrInvalidStep = errors.New("wizard: operation not allowed on current step")

	// ErrSessionExpired возвращается для сессий с истёкшим сроком жизни
	ErrSessionExpired = errors.New("wizard: session expired")
)
