package interfaces

import (
	"net/http"
)

type ApplicationContext[T any] struct {
	Ctx       any
	Body      *T
	Keys      map[string]any
	Header    http.Header
	Param     map[string]any
	Query     map[string]any
	UserAgent string
	DeviceID  string
	ClientIP  string
}

func (ac *ApplicationContext[T]) GetHeader(key string) *string {
	if ac.Header == nil {
		return nil
	}
	v := ac.Header.Get(key)
	if v == "" {
		return nil
	}
	return &v
}

func (ac *ApplicationContext[T]) SetContextData(key string, data any) {
	if ac.Keys == nil {
		ac.Keys = map[string]any{}
	}
	ac.Keys[key] = data
}

func (ac *ApplicationContext[T]) GetContextData(key string) any {
	if ac.Keys == nil {
		return nil
	}
	return ac.Keys[key]
}

func (ac *ApplicationContext[T]) GetStringContextData(key string) string {
	v, ok := ac.GetContextData(key).(string)
	if !ok {
		return ""
	}
	return v
}

func (ac *ApplicationContext[T]) GetStringParameter(key string) string {
	if ac.Param == nil {
		return ""
	}
	v, _ := ac.Param[key].(string)
	return v
}

func (ac *ApplicationContext[T]) GetStringQuery(key string) string {
	if ac.Query == nil {
		return ""
	}
	v, _ := ac.Query[key].(string)
	return v
}
