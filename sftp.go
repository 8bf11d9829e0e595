package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/sftp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"
)

// SFTPSource wraps one SSH connection and its SFTP subsystem. The sftp client
// multiplexes requests over the single connection, so concurrent transfer
// workers can each hold their own file handle.
type SFTPSource struct {
	sshClient  *ssh.Client
	sftpClient *sftp.Client
}

func ConnectSFTP(cfg SFTPConfig) (*SFTPSource, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Hostname, cfg.Port)

	authMethods := make([]ssh.AuthMethod, 0)
	if cfg.KeyFile != "" {
		keyBytes, readErr := os.ReadFile(cfg.KeyFile)
		if readErr != nil {
			return nil, &ConnectionError{Host: addr, Err: readErr}
		}
		signer, parseErr := ssh.ParsePrivateKey(keyBytes)
		if parseErr != nil {
			return nil, &ConnectionError{Host: addr, Err: parseErr}
		}
		authMethods = append(authMethods, ssh.PublicKeys(signer))
	}
	if cfg.Password != "" {
		authMethods = append(authMethods, ssh.Password(cfg.Password))
	}

	sshConfig := &ssh.ClientConfig{
		User: cfg.Username,
		Auth: authMethods,
		// host key verification is left to the deployment environment
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         5 * time.Second,
	}

	log.Info(fmt.Sprintf("Connecting to SFTP %s...", addr))
	sshClient, dialErr := ssh.Dial("tcp", addr, sshConfig)
	if dialErr != nil {
		return nil, &ConnectionError{Host: addr, Err: dialErr}
	}

	sftpClient, subsysErr := sftp.NewClient(sshClient)
	if subsysErr != nil {
		sshClient.Close()
		return nil, &ConnectionError{Host: addr, Err: subsysErr}
	}
	log.Info("SFTP connected.")

	return &SFTPSource{sshClient: sshClient, sftpClient: sftpClient}, nil
}

func (s *SFTPSource) ReadDir(dirPath string) ([]os.FileInfo, error) {
	return s.sftpClient.ReadDir(dirPath)
}

func (s *SFTPSource) Stat(filePath string) (os.FileInfo, error) {
	return s.sftpClient.Stat(filePath)
}

func (s *SFTPSource) ReadLink(filePath string) (string, error) {
	return s.sftpClient.ReadLink(filePath)
}

func (s *SFTPSource) Open(filePath string) (io.ReadCloser, error) {
	return s.sftpClient.Open(filePath)
}

func (s *SFTPSource) Close() error {
	s.sftpClient.Close()
	return s.sshClient.Close()
}
