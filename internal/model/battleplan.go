package model

import (
	"time"

	"gorm.io/datatypes"
)

// BattlePlanDay 30 天作战计划中的一天
// routine 存 JSON 字符串数组（每行一个时间块）
type BattlePlanDay struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID  string         `gorm:"type:varchar(36);uniqueIndex:idx_user_day;not null" json:"user_id"`
	Day     int            `gorm:"uniqueIndex:idx_user_day;not null" json:"day"`
	Phase   string         `gorm:"type:varchar(64)" json:"phase"`
	Weekday string         `gorm:"type:varchar(16)" json:"weekday"`
	Title   string         `gorm:"type:varchar(128)" json:"title"`
	Mission string         `gorm:"type:text" json:"mission"`
	KPI     string         `gorm:"type:text" json:"kpi"`
	Routine datatypes.JSON `gorm:"type:json" json:"routine"`
}

func (BattlePlanDay) TableName() string {
	return "battle_plan_days"
}

// 两套基础作息：工作日作战节奏和周末恢复节奏
var RoutineWar = []string{
	"10:00 - Despertar & Ducha Fría",
	"10:30 - Input Pasivo (I+D)",
	"11:50 - Preparación Logística (Mochila)",
	"12:00 - 🚗 TRANSICIÓN SEGURA (Viaje con Padre)",
	"12:45 - Oficina: Saludo & Pizarra",
	"13:00 - Bloque Estratégico",
	"14:00 - Comida Equipo (Agua/Zero)",
	"15:00 - 🚀 DEEP WORK (Auriculares ON)",
	"17:00 - Descanso Bio (Paseo Solar)",
	"17:30 - I+D Aplicado",
	"19:30 - Cierre de Sistemas (Git commit)",
	"20:00 - 🚗 RETIRADA (Vuelta a casa)",
	"21:00 - Zona Segura (Cena familiar)",
	"23:00 - Sueño Reparador",
}

var RoutineRegen = []string{
	"11:00 - Despertar Natural",
	"11:30 - Desayuno Lento",
	"12:30 - Actividad Física (Sin móvil)",
	"14:30 - Comida Familiar Potente",
	"16:00 - Siesta / Lectura",
	"17:30 - Hobby Analógico",
	"19:30 - Cine / Serie",
	"23:00 - Cierre Mental",
}

// BattlePlanSeed 默认 30 天计划（Plan v3），首次访问时落库
type BattlePlanSeed struct {
	Day     int
	Phase   string
	Weekday string
	Title   string
	Mission string
	KPI     string
	Routine []string
}

var DefaultBattlePlan = []BattlePlanSeed{
	{1, "Semana 1: Estabilización", "Lunes", "El Corte Inicial", "Entregar tarjetas/dinero a padre. Ir a oficina.", "Definir Backlog.", RoutineWar},
	{2, "Semana 1: Estabilización", "Martes", "Resistencia Pura", "Superar craving 16:00 con agua.", "Revisión código legado.", RoutineWar},
	{3, "Semana 1: Estabilización", "Miércoles", "La Pizarra", "Explicar concepto sobrio a socios.", "Dibujar arquitectura cliente.", RoutineWar},
	{4, "Semana 1: Estabilización", "Jueves", "I+D Local", "Instalar librería nueva localmente.", "'Hello World' IA funcional.", RoutineWar},
	{5, "Semana 1: Estabilización", "Viernes", "Salida Limpia", "Salir 19:30 con portátil cerrado.", "Enviar facturas.", RoutineWar},
	{6, "Semana 1: Estabilización", "Sábado", "Detox Sábado", "0 Pantallas. Aire libre.", "Descanso Neuronal.", RoutineRegen},
	{7, "Semana 1: Estabilización", "Domingo", "Familia", "Comida sin discusiones.", "Descanso Neuronal.", RoutineRegen},
	{8, "Semana 2: Claridad", "Lunes", "Organización", "Planificar Sprint 2 semanas.", "Inbox Cero / Trello limpio.", RoutineWar},
	{9, "Semana 2: Claridad", "Martes", "Deep Work", "4h código sin interrupciones.", "Módulo backend completado.", RoutineWar},
	{10, "Semana 2: Claridad", "Miércoles", "Verdad Financiera", "Analizar flujo de caja real.", "Excel actualizado.", RoutineWar},
	{11, "Semana 2: Claridad", "Jueves", "Innovación", "Crear prototipo para lead.", "Demo funcional lista.", RoutineWar},
	{12, "Semana 2: Claridad", "Viernes", "Honestidad", "Charla 15 min con socios.", "Informe técnico enviado.", RoutineWar},
	{13, "Semana 2: Claridad", "Sábado", "Naturaleza", "Salida al campo obligatoria.", "Serotonina.", RoutineRegen},
	{14, "Semana 2: Claridad", "Domingo", "Hobby", "Cocinar/Manualidad.", "Descanso Neuronal.", RoutineRegen},
	{15, "Semana 3: Velocidad", "Lunes", "Contacto", "Enviar 5 emails personales.", "Reactivar 2 leads.", RoutineWar},
	{16, "Semana 3: Velocidad", "Martes", "Optimización", "Mejorar velocidad IA (refactor).", "Reducir latencia 20%.", RoutineWar},
	{17, "Semana 3: Velocidad", "Miércoles", "Venta VIP", "Reunión cliente importante.", "Presentar propuesta.", RoutineWar},
	{18, "Semana 3: Velocidad", "Jueves", "Marketing", "Publicar caso éxito LinkedIn.", "Post autoridad técnico.", RoutineWar},
	{19, "Semana 3: Velocidad", "Viernes", "Cobro", "Asegurar liquidez.", "Dinero en banco.", RoutineWar},
	{20, "Semana 3: Velocidad", "Sábado", "Ocio Sano", "Cine/Cena fuera (sin alcohol).", "Recompensa personal.", RoutineRegen},
	{21, "Semana 3: Velocidad", "Domingo", "Lectura", "Libro de negocios.", "Inspiración estratégica.", RoutineRegen},
	{22, "Semana 4: Liderazgo", "Lunes", "Visión Q+1", "Definir Roadmap trimestre.", "Doc estrategia técnica.", RoutineWar},
	{23, "Semana 4: Liderazgo", "Martes", "Delegación", "Asignar tareas técnicas.", "Crear SOPs.", RoutineWar},
	{24, "Semana 4: Liderazgo", "Miércoles", "Expansión", "Investigar nuevo nicho.", "Informe viabilidad.", RoutineWar},
	{25, "Semana 4: Liderazgo", "Jueves", "Cultura", "Comida equipo pagada empresa.", "Celebrar hitos.", RoutineWar},
	{26, "Semana 4: Liderazgo", "Viernes", "Revisión Total", "Análisis KPIs mes.", "Cierre contable.", RoutineWar},
	{27, "Semana 4: Liderazgo", "Sábado", "PREMIO", "Comprarte algo importante.", "Celebración Sobria.", RoutineRegen},
	{28, "Semana 4: Liderazgo", "Domingo", "Reflexión", "Escribir en cuaderno.", "Preparación Mes 2.", RoutineRegen},
	{29, "Ciclo Nuevo", "Lunes", "Ciclo Nuevo", "Inicio rutina Mes 2.", "Planificar Sprint.", RoutineWar},
	{30, "Ciclo Nuevo", "Martes", "CONSISTENCIA", "Demostrar que no fue suerte.", "Facturar y picar código.", RoutineWar},
}
