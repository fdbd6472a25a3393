package stubapi

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/verilearn/verilearn/core/session"
)

type (
	// User is one registered account.
	User struct {
		ID           int
		Name         string
		Email        string
		PasswordHash []byte
		Role         session.Role
		CreatedAt    time.Time
	}

	// Assignment is one analyzed submission.
	Assignment struct {
		ID        int
		StudentID int
		Text      string
		Subject   string

		Questions []Question
		Responses map[string]string

		ConceptClarity     float64
		Application        float64
		LogicalConsistency float64
		Depth              float64
		FinalScore         float64

		RadarClarity          float64
		RadarApplication      float64
		RadarLogic            float64
		RadarCriticalThinking float64
		RadarRetention        float64

		WeakTopics      []string
		Recommendations []recommendation
		AIDependency    float64

		Status    string // analyzed | completed
		CreatedAt time.Time
	}

	Question struct {
		ID       string `json:"id"`
		Question string `json:"question"`
	}

	recommendation struct {
		Title  string  `json:"title"`
		Author string  `json:"author"`
		Topic  string  `json:"topic"`
		Match  float64 `json:"match"`
	}

	// DB is the stub's in-memory storage.
	DB struct {
		mu          sync.RWMutex
		users       map[int]*User
		assignments map[int]*Assignment
		nextUserID  int
		nextAsgnID  int
	}
)

func newDB() *DB {
	return &DB{
		users:       make(map[int]*User),
		assignments: make(map[int]*Assignment),
		nextUserID:  1,
		nextAsgnID:  1,
	}
}

func (db *DB) createUser(usr User) *User {
	db.mu.Lock()
	defer db.mu.Unlock()
	usr.ID = db.nextUserID
	db.nextUserID++
	usr.CreatedAt = time.Now().UTC()
	db.users[usr.ID] = &usr
	return &usr
}

func (db *DB) userByEmail(email string) (*User, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	email = strings.ToLower(email)
	for _, usr := range db.users {
		if strings.ToLower(usr.Email) == email {
			cp := *usr
			return &cp, true
		}
	}
	return nil, false
}

func (db *DB) userByID(id int) (*User, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	usr, ok := db.users[id]
	if !ok {
		return nil, false
	}
	cp := *usr
	return &cp, true
}

func (db *DB) students() []*User {
	db.mu.RLock()
	defer db.mu.RUnlock()
	var students []*User
	for _, usr := range db.users {
		if usr.Role == session.RoleStudent {
			cp := *usr
			students = append(students, &cp)
		}
	}
	sort.Slice(students, func(i, j int) bool { return students[i].Name < students[j].Name })
	return students
}

func (db *DB) createAssignment(a Assignment) *Assignment {
	db.mu.Lock()
	defer db.mu.Unlock()
	a.ID = db.nextAsgnID
	db.nextAsgnID++
	a.CreatedAt = time.Now().UTC()
	db.assignments[a.ID] = &a
	return &a
}

func (db *DB) assignment(id int) (*Assignment, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	a, ok := db.assignments[id]
	if !ok {
		return nil, false
	}
	cp := *a
	return &cp, true
}

func (db *DB) updateAssignment(a *Assignment) {
	db.mu.Lock()
	defer db.mu.Unlock()
	cp := *a
	db.assignments[a.ID] = &cp
}

// assignmentsOf returns a student's assignments, oldest first.
func (db *DB) assignmentsOf(studentID int) []*Assignment {
	db.mu.RLock()
	defer db.mu.RUnlock()
	var out []*Assignment
	for _, a := range db.assignments {
		if a.StudentID == studentID {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (db *DB) allAssignments() []*Assignment {
	db.mu.RLock()
	defer db.mu.RUnlock()
	out := make([]*Assignment, 0, len(db.assignments))
	for _, a := range db.assignments {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (db *DB) studentCount() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	var n int
	for _, usr := range db.users {
		if usr.Role == session.RoleStudent {
			n++
		}
	}
	return n
}
