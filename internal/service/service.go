package service

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/assistant"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/logger"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/model"
	api "gitlab.com/dirk.krummacker/contacts-assistant/pkg/model"
)

// dispatcher executes all commands and owns the contact directory.
var dispatcher *assistant.Dispatcher

// mu serializes all access to the dispatcher, so one command fully completes before the next
// begins.
var mu sync.Mutex

// log receives the service's own log lines. HTTP requests are logged by gin.
var log = logger.NewNop()

// SetupAssistant installs the dispatcher that serves all requests. The dispatcher can work on a
// fresh directory for production use or on a prepared one within unit tests.
func SetupAssistant(d *assistant.Dispatcher, l *logger.Logger) {
	mu.Lock()
	defer mu.Unlock()
	dispatcher = d
	if l != nil {
		log = l
	}
}

// SetupHttpRouter initializes the REST API router and registers all endpoints.
func SetupHttpRouter(requestLogging bool) *gin.Engine {
	var router *gin.Engine
	if requestLogging {
		router = gin.Default()
	} else {
		router = gin.New()
		router.Use(gin.Recovery())
	}
	router.POST("/commands", executeCommand)
	router.GET("/contacts", findContacts)
	router.GET("/contacts/:name", findContactByName)
	router.DELETE("/contacts/:name", deleteContactByName)
	router.GET("/birthdays", findUpcomingBirthdays)
	return router
}

// toContact converts a record into its JSON view.
func toContact(record *model.Record, today time.Time) api.Contact {
	contact := api.Contact{
		Name:   record.Name(),
		Phones: make([]string, 0),
	}
	for _, phone := range record.Phones() {
		contact.Phones = append(contact.Phones, phone.String())
	}
	if birthday, ok := record.Birthday(); ok {
		formatted := birthday.String()
		contact.Birthday = &formatted
		if days, ok := record.DaysToNextBirthday(today); ok {
			contact.DaysToBirthday = &days
		}
	}
	return contact
}

// toContacts converts records into their JSON views, keeping the order.
func toContacts(records []*model.Record, today time.Time) []api.Contact {
	contacts := make([]api.Contact, 0, len(records))
	for _, record := range records {
		contacts = append(contacts, toContact(record, today))
	}
	return contacts
}

// executeCommand runs one input line through the assistant and responds with its reply. The reply
// is exactly what the interactive prompt would print; failures of the command itself are part of
// the reply, not an HTTP error.
//
// Example REST API call:
//
//	> curl http://localhost:8080/commands --request "POST" --header "Content-Type: application/json" --data '{"line": "add John 1234567890"}'
func executeCommand(c *gin.Context) {
	var request api.CommandRequest
	if err := c.BindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	mu.Lock()
	reply := dispatcher.Execute(request.Line)
	mu.Unlock()
	c.IndentedJSON(http.StatusOK, api.CommandResponse{Reply: reply.Text, Quit: reply.Quit})
}

// findContacts responds with the list of all contacts as JSON.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts
func findContacts(c *gin.Context) {
	mu.Lock()
	contacts := toContacts(dispatcher.Directory().Records(), dispatcher.Today())
	mu.Unlock()
	c.IndentedJSON(http.StatusOK, contacts)
}

// findContactByName locates the contact whose name matches the name parameter of the request URL
// exactly, then returns that contact as a response.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/John
func findContactByName(c *gin.Context) {
	name := c.Param("name")
	mu.Lock()
	record, found := dispatcher.Directory().Find(name)
	var contact api.Contact
	if found {
		contact = toContact(record, dispatcher.Today())
	}
	mu.Unlock()
	if !found {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	c.IndentedJSON(http.StatusOK, contact)
}

// deleteContactByName deletes the contact whose name matches the name parameter of the request
// URL from the directory.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/John --request "DELETE"
func deleteContactByName(c *gin.Context) {
	name := c.Param("name")
	mu.Lock()
	deleted := dispatcher.Directory().Delete(name)
	mu.Unlock()
	if deleted {
		log.Info("contact deleted", "name", name)
		c.IndentedJSON(http.StatusOK, gin.H{"message": "contact deleted"})
	} else {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
	}
}

// findUpcomingBirthdays responds with the contacts whose birthday falls within the next seven
// days of the current year.
//
// Example REST API call:
//
//	> curl http://localhost:8080/birthdays
func findUpcomingBirthdays(c *gin.Context) {
	mu.Lock()
	today := dispatcher.Today()
	contacts := toContacts(dispatcher.Directory().UpcomingBirthdays(today), today)
	mu.Unlock()
	c.IndentedJSON(http.StatusOK, contacts)
}
