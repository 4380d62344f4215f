package booking

import (
	"context"
	"sync"
	"time"

	"clinicbook/models"

	appointmentRepo "clinicbook/database/repository/appointment"
)

type fakeDoctorRepo struct {
	doctors map[string]*models.Doctor
}

func (f *fakeDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	return f.doctors[id], nil
}

func (f *fakeDoctorRepo) ListActive(ctx context.Context) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range f.doctors {
		if d.IsActive {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	f.doctors[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepo) Update(ctx context.Context, doctor *models.Doctor) error {
	f.doctors[doctor.ID] = doctor
	return nil
}

type fakeTreatmentRepo struct {
	treatments map[string]*models.Treatment
}

func (f *fakeTreatmentRepo) GetByID(ctx context.Context, id string) (*models.Treatment, error) {
	return f.treatments[id], nil
}

func (f *fakeTreatmentRepo) ListActive(ctx context.Context) ([]models.Treatment, error) {
	var out []models.Treatment
	for _, t := range f.treatments {
		if t.IsActive {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTreatmentRepo) Create(ctx context.Context, treatment *models.Treatment) error {
	f.treatments[treatment.ID] = treatment
	return nil
}

func (f *fakeTreatmentRepo) Update(ctx context.Context, treatment *models.Treatment) error {
	f.treatments[treatment.ID] = treatment
	return nil
}

type fakeScheduleRepo struct {
	schedules  []models.WeeklySchedule
	exceptions map[string]*models.ScheduleException // keyed by doctorID+"|"+date
}

func (f *fakeScheduleRepo) GetSchedulesInEffect(ctx context.Context, doctorID, dayOfWeek, date string) ([]models.WeeklySchedule, error) {
	var out []models.WeeklySchedule
	for _, s := range f.schedules {
		if s.DoctorID == doctorID && s.DayOfWeek == dayOfWeek && s.IsActive && s.InEffectOn(date) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) GetException(ctx context.Context, doctorID, date string) (*models.ScheduleException, error) {
	return f.exceptions[doctorID+"|"+date], nil
}

func (f *fakeScheduleRepo) ListForDoctor(ctx context.Context, doctorID string) ([]models.WeeklySchedule, error) {
	var out []models.WeeklySchedule
	for _, s := range f.schedules {
		if s.DoctorID == doctorID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) CreateSchedule(ctx context.Context, sched *models.WeeklySchedule) error {
	f.schedules = append(f.schedules, *sched)
	return nil
}

func (f *fakeScheduleRepo) UpdateSchedule(ctx context.Context, sched *models.WeeklySchedule) error {
	for i := range f.schedules {
		if f.schedules[i].ID == sched.ID {
			f.schedules[i] = *sched
		}
	}
	return nil
}

func (f *fakeScheduleRepo) DeactivateSchedule(ctx context.Context, id string) error {
	for i := range f.schedules {
		if f.schedules[i].ID == id {
			f.schedules[i].IsActive = false
		}
	}
	return nil
}

func (f *fakeScheduleRepo) CreateException(ctx context.Context, exc *models.ScheduleException) error {
	f.exceptions[exc.DoctorID+"|"+exc.ExceptionDate] = exc
	return nil
}

func (f *fakeScheduleRepo) DeleteException(ctx context.Context, id string) error {
	for k, e := range f.exceptions {
		if e.ID == id {
			delete(f.exceptions, k)
		}
	}
	return nil
}

// fakeAppointmentRepo stores appointments in memory and emulates the store's
// commit behavior: the unique queue-number constraint, and per-commit
// serialization of the revalidation callback the way transactions contending
// on the guard document serialize. CreateWithQueueNumber deliberately
// releases the data lock between reading the max and committing, so
// concurrent callers can race for the same number the way they would against
// a real database. beforeCommit, when set, runs after the caller's read gates
// and before the commit, which lets tests interleave a competing writer into
// that window.
type fakeAppointmentRepo struct {
	mu           sync.Mutex // protects appointments
	commitMu     sync.Mutex // serializes revalidation plus insert
	appointments []*models.Appointment
	beforeCommit func()
}

func (f *fakeAppointmentRepo) active(a *models.Appointment) bool {
	return a.Status != models.StatusCancelled
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.appointments {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) GetBookedIntervals(ctx context.Context, doctorID, date string) ([]models.BookedInterval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.BookedInterval
	for _, a := range f.appointments {
		if a.DoctorID == doctorID && a.AppointmentDate == date && f.active(a) {
			out = append(out, models.BookedInterval{StartTime: a.StartTime, EndTime: a.EndTime})
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) CountForDoctorDate(ctx context.Context, doctorID, date string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, a := range f.appointments {
		if a.DoctorID == doctorID && a.AppointmentDate == date && f.active(a) {
			n++
		}
	}
	return n, nil
}

func (f *fakeAppointmentRepo) maxQueueLocked(doctorID, date string) int {
	max := 0
	for _, a := range f.appointments {
		if a.DoctorID == doctorID && a.AppointmentDate == date && f.active(a) && a.QueueNumber > max {
			max = a.QueueNumber
		}
	}
	return max
}

func (f *fakeAppointmentRepo) CreateWithQueueNumber(ctx context.Context, appt *models.Appointment, revalidate func(ctx context.Context) error) error {
	if f.beforeCommit != nil {
		f.beforeCommit()
	}

	f.mu.Lock()
	next := f.maxQueueLocked(appt.DoctorID, appt.AppointmentDate) + 1
	f.mu.Unlock()

	// Widen the race window so concurrent callers actually collide.
	time.Sleep(time.Millisecond)

	// Commits serialize here; revalidate sees every writer that got in
	// ahead of this one.
	f.commitMu.Lock()
	defer f.commitMu.Unlock()

	if revalidate != nil {
		if err := revalidate(ctx); err != nil {
			return err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.appointments {
		if a.DoctorID == appt.DoctorID && a.AppointmentDate == appt.AppointmentDate &&
			f.active(a) && a.QueueNumber == next {
			return appointmentRepo.ErrQueueConflict
		}
	}
	appt.QueueNumber = next
	cp := *appt
	f.appointments = append(f.appointments, &cp)
	return nil
}

func (f *fakeAppointmentRepo) ListForCustomer(ctx context.Context, customerID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.CustomerID == customerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListForDate(ctx context.Context, date string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appointments {
		if date == "" || a.AppointmentDate == date {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.appointments {
		if a.ID == id {
			a.Status = status
		}
	}
	return nil
}

func (f *fakeAppointmentRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fixedDailyLimit int

func (l fixedDailyLimit) GetDailyLimit(ctx context.Context) int { return int(l) }

// newTestService wires a booking service around in-memory stores with one
// active doctor, a 30-minute consultation and a 60-minute cleaning.
func newTestService() (*DefaultBookingService, *fakeAppointmentRepo, *fakeScheduleRepo) {
	appts := &fakeAppointmentRepo{}
	scheds := &fakeScheduleRepo{exceptions: map[string]*models.ScheduleException{}}
	svc := &DefaultBookingService{
		Doctors: &fakeDoctorRepo{doctors: map[string]*models.Doctor{
			"doc-1": {ID: "doc-1", FullName: "Dr. Elena Mart", IsActive: true},
			"doc-2": {ID: "doc-2", FullName: "Dr. Gone", IsActive: false},
		}},
		Treatments: &fakeTreatmentRepo{treatments: map[string]*models.Treatment{
			"consult":  {ID: "consult", Name: "Consultation", DurationMinutes: 30, IsConsultation: true, IsActive: true},
			"cleaning": {ID: "cleaning", Name: "Dental Cleaning", DurationMinutes: 60, IsActive: true},
			"retired":  {ID: "retired", Name: "Amalgam Filling", DurationMinutes: 45, IsActive: false},
		}},
		Schedules:    scheds,
		Appointments: appts,
		DailyLimits:  fixedDailyLimit(30),
	}
	return svc, appts, scheds
}
