package session

import (
	"fmt"
)

const (
	// sesión por id: session:{id} -> JSON de entity.Session
	keySession = "session:%s"

	// sesión vigente de un empleado: session:employee:{role}:{rut} -> id
	keyEmployee = "session:employee:%s:%s"
)

func sessionKey(id string) string {
	return fmt.Sprintf(keySession, id)
}

func employeeKey(role, rut string) string {
	return fmt.Sprintf(keyEmployee, role, rut)
}
