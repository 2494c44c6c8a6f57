// Package svn implements a repository client on top of the svn command line
// client. Every call runs svn non-interactively with cached credentials
// disabled; the password is passed on stdin.
package svn

import (
	"bytes"
	"context"
	"encoding/xml"
	"net/url"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/domain/interfaces"
	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
)

// authErrorCodes are svn error codes reported when the server rejects the
// credentials.
var authErrorCodes = []string{
	"E170001", // authorization failed
	"E175013", // access forbidden
	"E215004", // no more credentials
}

type Factory struct {
	path string
}

var _ interfaces.RepositoryFactory = (*Factory)(nil)

// NewFactory returns a factory of clients that run the svn binary at path.
func NewFactory(path string) *Factory {
	return &Factory{path: path}
}

func (x *Factory) NewClient(repoURL *url.URL, username string, password types.RepoPassword) (interfaces.RepositoryClient, error) {
	if repoURL == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "repository URL is nil")
	}
	if repoURL.User != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "credentials must not be embedded in the repository URL",
			goerr.V("url", repoURL.Redacted()))
	}

	return &Client{
		path:     x.path,
		url:      repoURL.String(),
		username: username,
		password: password,
	}, nil
}

type Client struct {
	path     string
	url      string
	username string
	password types.RepoPassword

	mu   sync.Mutex
	root string
}

var _ interfaces.RepositoryClient = (*Client)(nil)

type infoXML struct {
	Entry struct {
		Revision int64  `xml:"revision,attr"`
		URL      string `xml:"url"`
		Root     string `xml:"repository>root"`
	} `xml:"entry"`
}

type logXML struct {
	Entries []struct {
		Revision int64  `xml:"revision,attr"`
		Author   string `xml:"author"`
		Date     string `xml:"date"`
		Msg      string `xml:"msg"`
	} `xml:"logentry"`
}

func (x *Client) run(ctx context.Context, subcommand string, args ...string) ([]byte, error) {
	argv := []string{subcommand, "--xml", "--non-interactive", "--no-auth-cache"}
	if x.username != "" {
		argv = append(argv, "--username", x.username)
	}
	if x.password != "" {
		argv = append(argv, "--password-from-stdin")
	}
	argv = append(argv, args...)

	cmd := exec.CommandContext(ctx, x.path, argv...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if x.password != "" {
		cmd.Stdin = strings.NewReader(string(x.password) + "\n")
	}

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		base := types.ErrConnection
		for _, code := range authErrorCodes {
			if strings.Contains(msg, code) {
				base = types.ErrAuthFailure
				break
			}
		}
		return nil, goerr.Wrap(base, "svn command failed",
			goerr.V("subcommand", subcommand),
			goerr.V("stderr", msg),
			goerr.V("error", err.Error()),
		)
	}

	return stdout.Bytes(), nil
}

func (x *Client) info(ctx context.Context) (*infoXML, error) {
	out, err := x.run(ctx, "info", "-r", "HEAD", x.url)
	if err != nil {
		return nil, err
	}

	var info infoXML
	if err := xml.Unmarshal(out, &info); err != nil {
		return nil, goerr.Wrap(types.ErrConnection, "failed to parse svn info",
			goerr.V("error", err.Error()))
	}

	if info.Entry.Root != "" {
		x.mu.Lock()
		x.root = info.Entry.Root
		x.mu.Unlock()
	}
	return &info, nil
}

func (x *Client) TestConnection(ctx context.Context) error {
	_, err := x.info(ctx)
	return err
}

func (x *Client) LatestRevision(ctx context.Context) (int64, error) {
	info, err := x.info(ctx)
	if err != nil {
		return 0, err
	}
	return info.Entry.Revision, nil
}

// Revision reads the log entry of the revision from the repository root so
// that revisions not touching the configured path are found as well.
func (x *Client) Revision(ctx context.Context, number int64) (*model.RevisionRecord, error) {
	x.mu.Lock()
	root := x.root
	x.mu.Unlock()

	if root == "" {
		info, err := x.info(ctx)
		if err != nil {
			return nil, err
		}
		root = info.Entry.Root
		if root == "" {
			root = info.Entry.URL
		}
	}

	rev := strconv.FormatInt(number, 10)
	out, err := x.run(ctx, "log", "-r", rev, root)
	if err != nil {
		return nil, err
	}

	var log logXML
	if err := xml.Unmarshal(out, &log); err != nil {
		return nil, goerr.Wrap(types.ErrConnection, "failed to parse svn log",
			goerr.V("revision", number),
			goerr.V("error", err.Error()))
	}
	if len(log.Entries) == 0 {
		return nil, goerr.Wrap(types.ErrRevisionNotFound, "no log entry", goerr.V("revision", number))
	}

	entry := log.Entries[0]
	return &model.RevisionRecord{
		Number:    entry.Revision,
		Author:    entry.Author,
		Timestamp: entry.Date,
		Message:   entry.Msg,
	}, nil
}
